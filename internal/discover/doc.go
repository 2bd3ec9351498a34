// Package discover finds Maven project directories in a directory tree.
//
// # Overview
//
// A directory counts as a project when a marker file (pom.xml by
// default) sits among its direct children. The walk is top-down and
// pruned: directory names matching the prune patterns are never
// descended into, and a discovered project is never searched for
// nested projects.
//
// # Usage
//
// Find projects under the current directory:
//
//	finder, err := discover.NewFinder(discover.Options{Root: "."})
//	if err != nil {
//	    return err
//	}
//	for path := range finder.Projects() {
//	    fmt.Println(path)
//	}
//
// Restrict results with glob filters on the project directory name:
//
//	finder, err := discover.NewFinder(discover.Options{
//	    Root:    ".",
//	    Include: []string{"lib-*"},
//	    Exclude: []string{"*-deprecated"},
//	})
package discover

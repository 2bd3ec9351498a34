// Package manifest emits Maven reactor (aggregator) POM files listing
// discovered project directories as modules.
package manifest

import (
	"embed"
	"fmt"

	"github.com/yetamine/tooling-mvn/internal/generator"
)

//go:embed templates/*.tmpl
var templates embed.FS

const reactorTemplate = "templates/reactor.xml.tmpl"

// Options configures reactor POM generation.
type Options struct {
	Coordinates Coordinates
	Name        string   // optional <name> element
	Modules     []string // module paths, already normalized and filtered
	Output      string   // target file path
	Template    string   // optional custom template path overriding the built-in
}

// Generator renders reactor POMs as file operations.
type Generator struct {
	renderer *generator.Renderer
}

// NewGenerator creates a manifest generator.
func NewGenerator() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

// Generate renders the reactor POM and returns the operations to write
// it. Nothing touches the filesystem until the operations execute.
func (g *Generator) Generate(opts Options) ([]generator.Operation, error) {
	if opts.Output == "" {
		return nil, fmt.Errorf("manifest output path is empty")
	}

	data := struct {
		Coordinates
		Name    string
		Modules []string
	}{
		Coordinates: opts.Coordinates,
		Name:        opts.Name,
		Modules:     opts.Modules,
	}

	var content []byte
	var err error
	if opts.Template != "" {
		content, err = g.renderer.RenderFile(opts.Template, data)
	} else {
		content, err = g.renderer.RenderFS(templates, reactorTemplate, data)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering reactor POM: %w", err)
	}

	return []generator.Operation{
		&generator.WriteFileOp{
			Path:    opts.Output,
			Content: content,
			Mode:    0644,
		},
	}, nil
}

package manifest

import (
	"fmt"
	"strings"
)

// Coordinates holds a Maven group/artifact/version triple.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// DefaultCoordinates fills in GAV parts omitted from user input.
var DefaultCoordinates = Coordinates{
	GroupID:    "localhost",
	ArtifactID: "build",
	Version:    "1.0.0-SNAPSHOT",
}

// String formats the coordinates in G:A:V syntax.
func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// ParseGAV parses coordinates in G:A:V syntax. The input must have
// exactly two colons; an empty part falls back to the corresponding
// part of defaults, so "::" yields defaults unchanged.
func ParseGAV(gav string, defaults Coordinates) (Coordinates, error) {
	parts := strings.Split(gav, ":")
	if len(parts) != 3 {
		return Coordinates{}, fmt.Errorf("not a valid GAV pattern: %s", gav)
	}

	c := Coordinates{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}
	if c.GroupID == "" {
		c.GroupID = defaults.GroupID
	}
	if c.ArtifactID == "" {
		c.ArtifactID = defaults.ArtifactID
	}
	if c.Version == "" {
		c.Version = defaults.Version
	}

	return c, nil
}

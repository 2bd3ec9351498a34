// Package config loads workspace defaults for mvnscout.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the workspace configuration file mvnscout looks for in
// the working directory.
const FileName = ".mvnscout.yml"

// Config holds workspace defaults. Flags win over config values; config
// values win over built-ins.
type Config struct {
	Discover DiscoverConfig
	Manifest ManifestConfig
}

// DiscoverConfig carries traversal defaults.
type DiscoverConfig struct {
	Prune   []string // nil = built-in prune set
	Include []string // nil = no include constraint
	Exclude []string // nil = no exclude constraint
	Marker  string   // empty = pom.xml
}

// ManifestConfig carries reactor POM defaults.
type ManifestConfig struct {
	Coordinates string // G:A:V, may omit parts
	Name        string
	Output      string
}

// Load reads workspace configuration from .mvnscout.yml in dir, with
// environment variable overrides (prefix MVNSCOUT, e.g.
// MVNSCOUT_DISCOVER_MARKER). A missing file yields an empty config.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".mvnscout")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()
	v.SetEnvPrefix("MVNSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg := &Config{
		Discover: DiscoverConfig{
			Marker: v.GetString("discover.marker"),
		},
		Manifest: ManifestConfig{
			Coordinates: v.GetString("manifest.coordinates"),
			Name:        v.GetString("manifest.name"),
			Output:      v.GetString("manifest.output"),
		},
	}

	// Absent and empty pattern lists mean different things to the
	// filters, so unset keys must stay nil and set-but-empty keys must
	// not collapse to nil.
	if v.IsSet("discover.prune") {
		cfg.Discover.Prune = stringList(v, "discover.prune")
	}
	if v.IsSet("discover.include") {
		cfg.Discover.Include = stringList(v, "discover.include")
	}
	if v.IsSet("discover.exclude") {
		cfg.Discover.Exclude = stringList(v, "discover.exclude")
	}

	return cfg, nil
}

func stringList(v *viper.Viper, key string) []string {
	values := v.GetStringSlice(key)
	if values == nil {
		values = []string{}
	}
	return values
}

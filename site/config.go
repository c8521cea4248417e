package site

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/tryintent/intentdocs/layout"
)

// ConfigFile is the name of the configuration file at the root of the site.
const ConfigFile = "site.toml"

// Config contains configuration data from the site.toml file.
type Config struct {
	Title         string                `toml:"title"`         // Site name shown in page titles
	Expires       Duration              `toml:"expires"`       // Expiry of rendered pages
	StaticExpires Duration              `toml:"staticexpires"` // Expiry of everything else
	Headers       map[string]string     `toml:"headers"`       // Extra response headers
	Minify        bool                  `toml:"minify"`        // Minify rendered HTML
	Community     layout.CommunityLinks `toml:"community"`     // Targets of the Community rows
}

// readConfig reads the site.toml file from fsys.
// It is not an error if the file does not exist.
func readConfig(fsys fs.FS) (Config, error) {
	var cfg Config
	b, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Cannot read config file: %w", err)
	}
	err = toml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return cfg, nil
}

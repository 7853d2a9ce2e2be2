package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/0x0FACED/go-tessellate/pkg/logger"
	"github.com/0x0FACED/go-tessellate/pkg/voronoi"
)

const (
	maxSide     = 5000
	maxStations = 2000
	maxRelax    = 50
)

// Config drives the demo server. Form values posted to the page override
// width, height, stations, policy and relax per request.
type Config struct {
	Addr     string `yaml:"addr" toml:"addr"`
	Width    int    `yaml:"width" toml:"width"`
	Height   int    `yaml:"height" toml:"height"`
	Stations int    `yaml:"stations" toml:"stations"`
	Policy   string `yaml:"policy" toml:"policy"`
	Relax    int    `yaml:"relax" toml:"relax"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		Width:    1000,
		Height:   1000,
		Stations: 12,
		Policy:   voronoi.OmitBorderEdges.String(),
		LogLevel: "debug",
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the
// defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(err, "parsing config YAML")
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, errors.Wrap(err, "parsing config TOML")
		}
	default:
		return cfg, errors.Newf("unsupported config extension %q", ext)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if err := validateSize(c.Width, c.Height, c.Stations, c.Relax); err != nil {
		return err
	}
	if _, err := voronoi.ParseBorderPolicy(c.Policy); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

func validateSize(width, height, stations, relax int) error {
	if width <= 0 || width > maxSide || height <= 0 || height > maxSide {
		return errors.Newf("size %dx%d outside 1..%d", width, height, maxSide)
	}
	if stations < 1 || stations > maxStations {
		return errors.Newf("stations %d outside 1..%d", stations, maxStations)
	}
	if relax < 0 || relax > maxRelax {
		return errors.Newf("relax %d outside 0..%d", relax, maxRelax)
	}
	return nil
}

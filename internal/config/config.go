package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Domain Domain `yaml:"domain"`
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
	Serve  Serve  `yaml:"serve"`
}

type Domain struct {
	// Half extent of the super triangle. Every site must lie inside it.
	HalfExtent float64 `yaml:"half_extent"`
}

type Render struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
	// Zero means fit the sites to the image.
	Scale    float64 `yaml:"scale"`
	Sites    bool    `yaml:"sites"`
	Delaunay bool    `yaml:"delaunay"`
	Voronoi  bool    `yaml:"voronoi"`
	Circles  bool    `yaml:"circles"`
	Fill     bool    `yaml:"fill"`
	Labels   bool    `yaml:"labels"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Serve struct {
	Addr string `yaml:"addr"`
	// Number of random sites on a fresh page.
	Sites int `yaml:"sites"`
	// Largest number of sites a request may ask for.
	MaxSites int `yaml:"max_sites"`
}

func Default() Config {
	return Config{
		Domain: Domain{HalfExtent: 10000},
		Render: Render{
			Width:    800,
			Height:   800,
			Padding:  40,
			Sites:    true,
			Delaunay: true,
			Voronoi:  true,
			Fill:     true,
		},
		Log:   Log{Level: "info"},
		Serve: Serve{Addr: ":8080", Sites: 24, MaxSites: 2000},
	}
}

// Load a YAML file over the defaults. An empty path gives the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !(c.Domain.HalfExtent > 0) {
		return errors.Errorf("domain.half_extent must be positive, got %v", c.Domain.HalfExtent)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Padding < 0 || c.Render.Scale < 0 {
		return errors.New("render padding and scale cannot be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Serve.Sites < 0 {
		return errors.Errorf("serve.sites cannot be negative, got %d", c.Serve.Sites)
	}
	if c.Serve.MaxSites < c.Serve.Sites {
		return errors.Errorf("serve.max_sites (%d) is below serve.sites (%d)", c.Serve.MaxSites, c.Serve.Sites)
	}
	return nil
}

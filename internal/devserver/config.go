package devserver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when no --config flag is given and it exists.
const DefaultConfigFile = "nojs-serve.yml"

// Config controls the development server.
type Config struct {
	Addr      string `yaml:"addr"`
	Root      string `yaml:"root"`
	Index     string `yaml:"index"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8080",
		Root:      "./web",
		Index:     "index.html",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads path over the defaults and applies environment overrides.
// An empty path falls back to DefaultConfigFile when it exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("NOJS_SERVE_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("NOJS_SERVE_ROOT"); v != "" {
		c.Root = v
	}
}

// Validate checks that the bundle directory and its index page exist.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("invalid configuration: root is empty")
	}
	if c.Addr == "" {
		return errors.New("invalid configuration: addr is empty")
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("invalid configuration: root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid configuration: root %s is not a directory", c.Root)
	}
	if _, err := os.Stat(filepath.Join(c.Root, c.Index)); err != nil {
		return fmt.Errorf("invalid configuration: index: %w", err)
	}
	return nil
}

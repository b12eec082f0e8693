package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// Load reads dir/folio.yaml. A missing file yields Default.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, iofs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// ApplyEnv overrides the listen address from FOLIO_ADDR.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if addr := getenv("FOLIO_ADDR"); addr != "" {
		c.Addr = addr
	}
	if level := getenv("FOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

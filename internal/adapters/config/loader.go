// Package config provides the optional configuration file loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// configFile represents the structure of the glhost config file.
type configFile struct {
	DriverDirectories []string `yaml:"driver_directories"`
	CacheDir          string   `yaml:"cache_dir"`
	Debug             bool     `yaml:"debug"`
}

// Loader implements ports.ConfigLoader using a YAML file under the
// user config directory. The file is optional; defaults apply when it
// is missing.
type Loader struct {
	// Path of the config file. Empty means the default location,
	// $XDG_CONFIG_HOME/glhost/config.yaml.
	Path   string
	logger ports.Logger
}

// NewLoader creates a config loader for the default location.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the config file and fills in defaults. The cache
// directory defaults to $XDG_CACHE_HOME/glhost.
func (l *Loader) Load() (*domain.Config, error) {
	path := l.Path
	if path == "" {
		confDir, err := os.UserConfigDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate user config directory")
		}
		path = filepath.Join(confDir, "glhost", "config.yaml")
	}

	var file configFile
	data, err := os.ReadFile(path) //nolint:gosec // Path is under the user config directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Optional file; run on defaults.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	cfg := &domain.Config{
		DriverDirectories: file.DriverDirectories,
		CacheDir:          file.CacheDir,
		Debug:             file.Debug,
	}
	if cfg.CacheDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate user cache directory")
		}
		cfg.CacheDir = filepath.Join(cacheDir, "glhost")
	}
	return cfg, nil
}

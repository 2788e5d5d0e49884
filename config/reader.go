package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/logging"
)

// Attributes holding file paths. Relative paths are resolved against the config file's directory.
var pathAttributes = []string{"map"}

// Read reads a config from the given file. Environment variables in the file are expanded.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %q", filePath)
	}
	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}
	cfg.ConfigFilePath = originalPath

	if originalPath != "" {
		dir := filepath.Dir(originalPath)
		for _, name := range pathAttributes {
			if !cfg.Space.Attributes.Has(name) {
				continue
			}
			p, err := cfg.Space.Attributes.String(name)
			if err != nil {
				return nil, err
			}
			if p != "" && !filepath.IsAbs(p) {
				cfg.Space.Attributes[name] = filepath.Join(dir, p)
			}
		}
		if cfg.Output.Image != "" && !filepath.IsAbs(cfg.Output.Image) {
			cfg.Output.Image = filepath.Join(dir, cfg.Output.Image)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	logger.Debugw("read config", "path", originalPath, "space", cfg.Space.Type, "algorithm", cfg.Planner.Algorithm)
	return &cfg, nil
}

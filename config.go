package main

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "mkinfo.yaml"

// loadConfig reads path over the defaults. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, raise(ErrCodeConfigInvalid, err, path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, raise(ErrCodeConfigInvalid, err, path)
	}

	if cfg.Format == "" {
		cfg.Format = formatJSON
	}
	if !validFormat(cfg.Format, extractFormats) {
		return cfg, raise(ErrCodeConfigInvalid, errors.New("unsupported format "+cfg.Format), path)
	}
	return cfg, nil
}

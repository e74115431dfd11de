package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/passmint/passmint/pkg/passgen"
)

// localConfigName is the per-directory config file probed when no explicit
// path is given.
const localConfigName = ".passmint.yaml"

// appConfig is the on-disk YAML shape. Missing keys keep their defaults
// because the file is unmarshalled over a pre-filled value.
type appConfig struct {
	Length  int  `yaml:"length"`
	Digits  bool `yaml:"digits"`
	Symbols bool `yaml:"symbols"`
	Count   int  `yaml:"count"`
}

func defaultAppConfig() appConfig {
	gen := passgen.DefaultConfig()
	return appConfig{
		Length:  gen.Length,
		Digits:  gen.Digits,
		Symbols: gen.Symbols,
		Count:   1,
	}
}

// generator returns the generation options carried by the config.
func (c appConfig) generator() passgen.Config {
	return passgen.Config{Length: c.Length, Digits: c.Digits, Symbols: c.Symbols}
}

// loadConfig reads the YAML file at path over the defaults. Environment
// references like ${HOME} are expanded before parsing. A missing file is
// not an error; the defaults are returned unchanged.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Length = passgen.ClampLength(cfg.Length)
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	return cfg, nil
}

// resolveConfigPath returns the config file to use. Priority:
// 1. Explicit -config flag (non-empty)
// 2. $PASSMINT_CONFIG
// 3. .passmint.yaml in the working directory (if it exists)
// 4. passmint/config.yaml under the user config dir
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if env := os.Getenv("PASSMINT_CONFIG"); env != "" {
		return env
	}

	if _, err := os.Stat(localConfigName); err == nil {
		return localConfigName
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "passmint", "config.yaml")
	}

	return localConfigName
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML configuration file. Empty fields leave
// the defaults in place.
type fileConfig struct {
	API struct {
		Host      string   `yaml:"host"`
		Port      string   `yaml:"port"`
		Path      string   `yaml:"path"`
		Endpoints []string `yaml:"endpoints"`
	} `yaml:"api"`

	Alerts struct {
		Locale   string `yaml:"locale"`
		Timezone string `yaml:"timezone"`
	} `yaml:"alerts"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Prefix string `yaml:"prefix"`
	} `yaml:"log"`
}

func loadFile(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setIfNotEmpty(&cfg.APIHost, fc.API.Host)
	setIfNotEmpty(&cfg.APIPort, fc.API.Port)
	setIfNotEmpty(&cfg.APIPath, fc.API.Path)
	if len(fc.API.Endpoints) > 0 {
		cfg.Endpoints = fc.API.Endpoints
	}

	setIfNotEmpty(&cfg.Locale, fc.Alerts.Locale)
	setIfNotEmpty(&cfg.Timezone, fc.Alerts.Timezone)

	setIfNotEmpty(&cfg.LogLevel, fc.Log.Level)
	setIfNotEmpty(&cfg.LogFormat, fc.Log.Format)
	setIfNotEmpty(&cfg.LogPrefix, fc.Log.Prefix)
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

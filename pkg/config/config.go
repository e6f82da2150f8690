package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "tod/pkg/errors"
	"tod/pkg/locale"
	"tod/pkg/logger"
	"tod/pkg/sanitizer"
)

type Config struct {
	APIHost   string
	APIPort   string
	APIPath   string
	Endpoints []string

	Locale   string
	Timezone string

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json text"`
	LogPrefix string

	Log *logger.Logger
}

// Read builds the configuration from defaults, then the optional YAML file
// named by DASHBOARD_CONFIG_FILE, then environment variables.
func Read() (*Config, error) {
	cfg := &Config{
		APIHost:   DefaultAPIHost,
		APIPort:   DefaultAPIPort,
		APIPath:   DefaultAPIPath,
		Endpoints: DefaultEndpoints,
		Locale:    DefaultLocale,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		LogPrefix: DefaultLogPrefix,
	}

	if path := getEnvStr(EnvConfigFile, ""); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return nil, apperrors.Config("failed to load configuration file", err)
		}
		fc.apply(cfg)
	}

	cfg.APIHost = getEnvStr(EnvAPIHost, cfg.APIHost)
	cfg.APIPort = getEnvStr(EnvAPIPort, cfg.APIPort)
	cfg.APIPath = getEnvStr(EnvAPIPath, cfg.APIPath)
	cfg.Endpoints = getEnvList(EnvAPIEndpoints, cfg.Endpoints)
	cfg.Locale = getEnvStr(EnvLocale, cfg.Locale)
	cfg.Timezone = getEnvStr(EnvTimezone, cfg.Timezone)
	cfg.LogLevel = getEnvStr(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnvStr(EnvLogFormat, cfg.LogFormat)
	cfg.LogPrefix = getEnvStr(EnvLogPrefix, cfg.LogPrefix)

	cfg.Endpoints = sanitizer.SanitizeSlice(cfg.Endpoints, sanitizer.StripQuotes)

	return cfg, nil
}

// Load reads and validates the configuration and attaches a logger for
// serviceName writing to stderr.
func Load(serviceName string) (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Config("invalid configuration", err)
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Output:    os.Stderr,
		AddSource: true,
		Service:   serviceName,
		Prefix:    cfg.LogPrefix,
	})
	cfg.LogConfiguration()
	return cfg, nil
}

var validate = validator.New()

func (cfg *Config) Validate() error {
	var errors []string

	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				errors = append(errors, fmt.Sprintf("%s must be one of [%s], got: %q", fe.Field(), fe.Param(), fe.Value()))
			}
		} else {
			errors = append(errors, err.Error())
		}
	}

	if host := sanitizer.NormalizeHost(cfg.APIHost); validate.Var(host, "url") != nil {
		errors = append(errors, fmt.Sprintf("APIHost must be an absolute URL, got: %s", cfg.APIHost))
	}

	if p := sanitizer.StripQuotes(cfg.APIPort); p != "" {
		if port, err := strconv.Atoi(p); err != nil || port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("APIPort must be between 1 and 65535, got: %s", cfg.APIPort))
		}
	}

	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			errors = append(errors, fmt.Sprintf("Timezone must be an IANA timezone, got: %s", cfg.Timezone))
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// APIBase is the backend base URL the dashboard talks to.
func (cfg *Config) APIBase() string {
	return sanitizer.BuildAPIBase(cfg.APIHost, cfg.APIPort, cfg.APIPath)
}

func (cfg *Config) Endpoint(suffix string) string {
	return sanitizer.BuildEndpoint(cfg.APIBase(), suffix)
}

// ProxyTarget is host and port without the API path, as used by the
// development server proxy.
func (cfg *Config) ProxyTarget() string {
	target := sanitizer.NormalizeHost(cfg.APIHost)
	if p := sanitizer.StripQuotes(cfg.APIPort); p != "" {
		target += ":" + p
	}
	return target
}

// Location resolves the zone used for fallback alert timestamps: the
// configured timezone, else the locale's default zone.
func (cfg *Config) Location() *time.Location {
	if cfg.Timezone != "" {
		if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
			return loc
		}
	}
	return locale.Lookup(cfg.Locale).Location()
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"api_base", cfg.APIBase(),
		"proxy_target", cfg.ProxyTarget(),
		"endpoints", cfg.Endpoints,
		"locale", cfg.Locale,
		"timezone", cfg.Location().String(),
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}

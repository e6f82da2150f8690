package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigFile, EnvAPIHost, EnvAPIPort, EnvAPIPath, EnvAPIEndpoints,
		EnvLocale, EnvTimezone, EnvLogLevel, EnvLogFormat, EnvLogPrefix,
	} {
		t.Setenv(key, "")
	}
}

func TestRead_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := cfg.APIBase(); got != "http://localhost:8000/dashboard" {
		t.Errorf("APIBase() = %q, want %q", got, "http://localhost:8000/dashboard")
	}
	if got := cfg.Endpoint(EndpointSend); got != "http://localhost:8000/dashboard/send" {
		t.Errorf("Endpoint(send) = %q", got)
	}
	if got := cfg.ProxyTarget(); got != "http://localhost:8000" {
		t.Errorf("ProxyTarget() = %q, want %q", got, "http://localhost:8000")
	}
	if !reflect.DeepEqual(cfg.Endpoints, DefaultEndpoints) {
		t.Errorf("Endpoints = %v, want %v", cfg.Endpoints, DefaultEndpoints)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestRead_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIHost, `"http://10.0.0.5/"`)
	t.Setenv(EnvAPIPort, "'9000'")
	t.Setenv(EnvAPIPath, "api")
	t.Setenv(EnvAPIEndpoints, "alerts, 'health' ,alerts,")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := cfg.APIBase(); got != "http://10.0.0.5:9000/api" {
		t.Errorf("APIBase() = %q, want %q", got, "http://10.0.0.5:9000/api")
	}
	if got := cfg.Endpoint("/health"); got != "http://10.0.0.5:9000/api/health" {
		t.Errorf("Endpoint(/health) = %q", got)
	}
	want := []string{"alerts", "health"}
	if !reflect.DeepEqual(cfg.Endpoints, want) {
		t.Errorf("Endpoints = %v, want %v", cfg.Endpoints, want)
	}
}

func TestRead_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := `
api:
  host: https://api.example.com/
  port: "8443"
  path: /v1/dashboard
  endpoints: [alerts, send]
alerts:
  locale: ko-KR
  timezone: UTC
log:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvAPIPort, "9443")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := cfg.APIBase(); got != "https://api.example.com:9443/v1/dashboard" {
		t.Errorf("APIBase() = %q", got)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Errorf("log settings = %q/%q, want debug/text", cfg.LogLevel, cfg.LogFormat)
	}
	if !reflect.DeepEqual(cfg.Endpoints, []string{"alerts", "send"}) {
		t.Errorf("Endpoints = %v", cfg.Endpoints)
	}
	if got := cfg.Location().String(); got != "UTC" {
		t.Errorf("Location() = %q, want UTC", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestRead_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Read(); err == nil {
		t.Errorf("Read() with missing config file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:   "empty port allowed",
			mutate: func(cfg *Config) { cfg.APIPort = "" },
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *Config) { cfg.APIPort = "70000" },
			wantErr: "APIPort",
		},
		{
			name:    "port not numeric",
			mutate:  func(cfg *Config) { cfg.APIPort = "http" },
			wantErr: "APIPort",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.LogLevel = "verbose" },
			wantErr: "LogLevel",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *Config) { cfg.LogFormat = "xml" },
			wantErr: "LogFormat",
		},
		{
			name:    "host without scheme",
			mutate:  func(cfg *Config) { cfg.APIHost = "not a url" },
			wantErr: "APIHost",
		},
		{
			name:    "bad timezone",
			mutate:  func(cfg *Config) { cfg.Timezone = "Mars/Olympus" },
			wantErr: "Timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				APIHost:   DefaultAPIHost,
				APIPort:   DefaultAPIPort,
				APIPath:   DefaultAPIPath,
				Locale:    DefaultLocale,
				LogLevel:  DefaultLogLevel,
				LogFormat: DefaultLogFormat,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log == nil {
		t.Errorf("Load() did not attach a logger")
	}

	t.Setenv(EnvAPIPort, "0")
	if _, err := Load("test"); err == nil {
		t.Errorf("Load() with port 0 should fail")
	}
}

package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Host: "localhost",
			Name: "catalog",
		},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseHost(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Host = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database host")
	}
}

func TestValidate_DefaultLimitAboveMax(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultLimit = 200
	cfg.Search.MaxLimit = 100

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for default_limit > max_limit")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.Database.Port != 5432 {
		t.Errorf("expected default database port 5432, got %d", cfg.Database.Port)
	}
	if cfg.Search.DefaultLimit != 12 {
		t.Errorf("expected default limit 12, got %d", cfg.Search.DefaultLimit)
	}
	if cfg.Search.MaxLimit != 100 {
		t.Errorf("expected max limit 100, got %d", cfg.Search.MaxLimit)
	}
	if cfg.Search.ConfidenceThreshold != 0.4 {
		t.Errorf("expected confidence threshold 0.4, got %g", cfg.Search.ConfidenceThreshold)
	}
	if cfg.Completion.TimeoutSec != 15 {
		t.Errorf("expected completion timeout 15s, got %d", cfg.Completion.TimeoutSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("SEARCHAPI_TEST_KEY", "secret")
	defer os.Unsetenv("SEARCHAPI_TEST_KEY")

	in := []byte("api_key: ${SEARCHAPI_TEST_KEY}\nhost: ${SEARCHAPI_TEST_MISSING:-localhost}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nhost: localhost\n"
	if out != want {
		t.Errorf("unexpected expansion:\ngot:  %q\nwant: %q", out, want)
	}
}

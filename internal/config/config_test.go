package config

import (
	"errors"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Tools.MaxTrips != DefaultMaxTrips {
		t.Errorf("Expected MaxTrips=%d, got %d", DefaultMaxTrips, cfg.Tools.MaxTrips)
	}
	if cfg.Polarsteps.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected TimeoutSeconds=%d, got %d", DefaultTimeoutSeconds, cfg.Polarsteps.TimeoutSeconds)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Expected Level=%s, got %s", DefaultLogLevel, cfg.Logging.Level)
	}
	if cfg.Polarsteps.RememberToken != "" {
		t.Error("Expected no default remember token")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) { c.Polarsteps.RememberToken = "token" },
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "non-positive max trips",
			mutate: func(c *Config) {
				c.Polarsteps.RememberToken = "token"
				c.Tools.MaxTrips = 0
			},
			wantErr: true,
		},
		{
			name: "non-positive timeout",
			mutate: func(c *Config) {
				c.Polarsteps.RememberToken = "token"
				c.Polarsteps.TimeoutSeconds = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingTokenIsFatal(t *testing.T) {
	// Force the credential empty regardless of the host environment.
	t.Setenv("POLARSTEPS_REMEMBER_TOKEN", "")

	_, err := LoadWithPath("")
	if err == nil {
		t.Fatal("Expected Load to fail without a remember token")
	}
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
}

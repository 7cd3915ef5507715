package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.CredentialScheme != "login-name" {
		t.Errorf("auth.credential_scheme = %q", cfg.Auth.CredentialScheme)
	}
	if cfg.Auth.MaxAttempts != 3 {
		t.Errorf("auth.max_attempts = %d, want 3", cfg.Auth.MaxAttempts)
	}
	if cfg.Auth.LockoutDuration != 2*time.Minute {
		t.Errorf("auth.lockout_duration = %s, want 2m", cfg.Auth.LockoutDuration)
	}
	if cfg.Simulation.Latency != 800*time.Millisecond {
		t.Errorf("simulation.latency = %s, want 800ms", cfg.Simulation.Latency)
	}
	if cfg.Redis.Enabled {
		t.Error("redis enabled by default")
	}
	if !cfg.Seed.Demo {
		t.Error("seed.demo disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
auth:
  credential_scheme: bcrypt
  max_attempts: 5
  lockout_duration: 10m
simulation:
  latency: 0s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("server.port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Auth.CredentialScheme != "bcrypt" {
		t.Errorf("auth.credential_scheme = %q", cfg.Auth.CredentialScheme)
	}
	if cfg.Auth.MaxAttempts != 5 {
		t.Errorf("auth.max_attempts = %d, want 5", cfg.Auth.MaxAttempts)
	}
	if cfg.Auth.LockoutDuration != 10*time.Minute {
		t.Errorf("auth.lockout_duration = %s", cfg.Auth.LockoutDuration)
	}
	if cfg.Simulation.Latency != 0 {
		t.Errorf("simulation.latency = %s, want 0", cfg.Simulation.Latency)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Auth: AuthConfig{
				CredentialScheme: "login-name",
				MaxAttempts:      3,
				LockoutDuration:  2 * time.Minute,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", nil, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"unknown scheme", func(c *Config) { c.Auth.CredentialScheme = "plaintext" }, true},
		{"zero attempts", func(c *Config) { c.Auth.MaxAttempts = 0 }, true},
		{"zero lockout", func(c *Config) { c.Auth.LockoutDuration = 0 }, true},
		{"negative latency", func(c *Config) { c.Simulation.Latency = -time.Second }, true},
		{"bad metrics port", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Port = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

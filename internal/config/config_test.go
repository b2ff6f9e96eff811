package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("reads optional settings", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "secret")
		t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3")

		cfg := Load()
		if cfg.Token != "secret" {
			t.Errorf("Token = %q", cfg.Token)
		}
		if cfg.APIBaseURL != "https://ghe.example.com/api/v3" {
			t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
		}
	})

	t.Run("everything optional", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GITHUB_API_URL", "")

		cfg := Load()
		if cfg.Token != "" || cfg.APIBaseURL != "" {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})
}

func TestLoadCollector(t *testing.T) {
	t.Run("requires database URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		if _, err := LoadCollector(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("carries the shared settings", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/lens")
		t.Setenv("GITHUB_TOKEN", "secret")

		cfg, err := LoadCollector()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DatabaseURL != "postgres://localhost/lens" {
			t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
		}
		if cfg.Token != "secret" {
			t.Errorf("Token = %q", cfg.Token)
		}
	})
}

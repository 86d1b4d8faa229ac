package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("expected development env, got %q", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.GeocodingLang != "en" {
		t.Errorf("expected en, got %q", cfg.GeocodingLang)
	}
	if cfg.RateLimitRPS != 25 || cfg.RateLimitBurst != 50 {
		t.Errorf("unexpected rate limit defaults %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.AuthSecret != "" {
		t.Errorf("expected auth disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GEOCODING_LANG", "id")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "production" || cfg.HTTPAddr != ":9090" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.GeocodingLang != "id" {
		t.Errorf("expected id, got %q", cfg.GeocodingLang)
	}
	if cfg.RateLimitRPS != 5 {
		t.Errorf("expected rps 5, got %v", cfg.RateLimitRPS)
	}
}

func TestWildcardOriginEnablesAllowAll(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "*")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.CORSAllowAll {
		t.Errorf("expected wildcard origin to enable allow-all")
	}
}

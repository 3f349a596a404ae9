package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "ALLOW_GUEST", "FILING_YEAR", "TAX_DEDUCT_PRETAX_CONTRIBUTIONS", "CORS_ALLOWED_ORIGINS", "JWT_EXPIRES_IN"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if !cfg.AllowGuest || !cfg.TaxDeductPreTaxContributions {
			t.Error("expected guest mode and pre-tax deduction enabled by default")
		}
		if cfg.FilingYear != time.Now().Year() {
			t.Errorf("expected current filing year, got %d", cfg.FilingYear)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %s", cfg.JWTExpirationDur)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ALLOW_GUEST", "false")
		t.Setenv("FILING_YEAR", "2025")
		t.Setenv("TAX_DEDUCT_PRETAX_CONTRIBUTIONS", "0")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AllowGuest || cfg.TaxDeductPreTaxContributions {
			t.Error("expected flags disabled")
		}
		if cfg.FilingYear != 2025 {
			t.Errorf("expected 2025, got %d", cfg.FilingYear)
		}
		if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
			t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("malformed_values_fall_back", func(t *testing.T) {
		t.Setenv("ALLOW_GUEST", "maybe")
		t.Setenv("FILING_YEAR", "next")
		t.Setenv("JWT_EXPIRES_IN", "forever")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.AllowGuest {
			t.Error("expected default guest mode")
		}
		if cfg.FilingYear != time.Now().Year() {
			t.Errorf("expected current year, got %d", cfg.FilingYear)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h, got %s", cfg.JWTExpirationDur)
		}
	})
}

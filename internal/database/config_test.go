package database

import (
	"testing"

	"pfa/internal/config"
)

func TestConfig(t *testing.T) {
	cfg := NewConfig(&config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "pfa",
		DBPassword: "secret",
		DBName:     "portfolio",
		DBSSLMode:  "require",
	})

	if got, want := cfg.DSN(), "host=db port=5433 user=pfa password=secret dbname=portfolio sslmode=require"; got != want {
		t.Errorf("expected DSN %q, got %q", want, got)
	}
	if got, want := cfg.URL(), "postgres://pfa:secret@db:5433/portfolio?sslmode=require"; got != want {
		t.Errorf("expected URL %q, got %q", want, got)
	}
}

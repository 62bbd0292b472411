package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"afclean/internal/domain/entities"
	"afclean/internal/infrastructure/config"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "afclean.db"),
	}}

	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Settings.Upsert(context.Background(), entities.Setting{Key: "company_name", Value: "AF"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "redis"}}
	if _, err := Open(context.Background(), cfg); err == nil {
		t.Fatalf("expected error")
	}
}

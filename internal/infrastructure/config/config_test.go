package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Server.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", c.Server.Port)
	}
	if c.Storage.Driver != DriverSQLite || c.Storage.SQLitePath == "" {
		t.Fatalf("unexpected storage config: %+v", c.Storage)
	}
	if c.DynamoDB.JobsTable != "jobs" || c.DynamoDB.LedgerTable != "ledger_entries" {
		t.Fatalf("unexpected tables: %+v", c.DynamoDB)
	}
	if c.Ledger.DescriptionPrefix != "Limpeza" {
		t.Fatalf("unexpected prefix: %q", c.Ledger.DescriptionPrefix)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "DynamoDB")
	t.Setenv("JOBS_TABLE", "af-jobs")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("LOG_FORMAT", "json")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Storage.Driver != DriverDynamoDB {
		t.Fatalf("expected dynamodb, got %q", c.Storage.Driver)
	}
	if c.DynamoDB.JobsTable != "af-jobs" || c.DynamoDB.Endpoint != "http://localhost:8000" {
		t.Fatalf("unexpected dynamodb config: %+v", c.DynamoDB)
	}
	if c.Log.Format != "json" {
		t.Fatalf("expected json, got %q", c.Log.Format)
	}
}

func TestFromViper_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("STORAGE_DRIVER", "postgres")
		if _, err := FromViper(v); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty sqlite path", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("SQLITE_PATH", " ")
		if _, err := FromViper(v); err == nil {
			t.Fatalf("expected error")
		}
	})
}

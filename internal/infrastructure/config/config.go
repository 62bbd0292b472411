package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
)

type ServerConfig struct {
	Port string
	Mode string
}

type StorageConfig struct {
	Driver     string
	SQLitePath string
}

// DynamoDBConfig is only used when Storage.Driver is "dynamodb".
// Local DynamoDB does not validate credentials, so the defaults are placeholders.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	JobsTable       string
	LedgerTable     string
	SettingsTable   string
}

type LogConfig struct {
	Level  string
	Format string
}

type LedgerConfig struct {
	DescriptionPrefix string
}

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	DynamoDB DynamoDBConfig
	Log      LogConfig
	Ledger   LedgerConfig
}

// Load reads the configuration from environment variables.
// A .env file is picked up by godotenv/autoload before this runs.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	SetDefaults(v)
	return FromViper(v)
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORAGE_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_PATH", "data/afclean.db")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("JOBS_TABLE", "jobs")
	v.SetDefault("LEDGER_TABLE", "ledger_entries")
	v.SetDefault("SETTINGS_TABLE", "settings")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LEDGER_DESCRIPTION_PREFIX", "Limpeza")
}

func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Mode: v.GetString("GIN_MODE"),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			JobsTable:       v.GetString("JOBS_TABLE"),
			LedgerTable:     v.GetString("LEDGER_TABLE"),
			SettingsTable:   v.GetString("SETTINGS_TABLE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Ledger: LedgerConfig{
			DescriptionPrefix: v.GetString("LEDGER_DESCRIPTION_PREFIX"),
		},
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return nil, fmt.Errorf("config: SQLITE_PATH is required for the sqlite driver")
		}
	case DriverDynamoDB:
		if c.DynamoDB.JobsTable == "" || c.DynamoDB.LedgerTable == "" || c.DynamoDB.SettingsTable == "" {
			return nil, fmt.Errorf("config: dynamodb table names must not be empty")
		}
	default:
		return nil, fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return c, nil
}

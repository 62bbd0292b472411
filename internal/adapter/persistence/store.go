package persistence

import (
	"context"
	"fmt"

	"afclean/internal/adapter/persistence/repository"
	"afclean/internal/adapter/persistence/sqlstore"
	"afclean/internal/infrastructure/config"
	"afclean/internal/infrastructure/database"
	"afclean/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Store bundles the repositories of one backend with its lifecycle.
type Store struct {
	Jobs     interfaces.IJobRepository
	Ledger   interfaces.ILedgerRepository
	Settings interfaces.ISettingsRepository

	close func() error
}

// Open connects the backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return openSQLite(cfg.Storage.SQLitePath)
	case config.DriverDynamoDB:
		return openDynamoDB(ctx, cfg.DynamoDB)
	}
	return nil, fmt.Errorf("persistence: unknown driver %q", cfg.Storage.Driver)
}

func openSQLite(path string) (*Store, error) {
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(db); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	logrus.WithField("path", path).Info("[persistence] sqlite store ready")
	return &Store{
		Jobs:     sqlstore.NewJobRepository(db),
		Ledger:   sqlstore.NewLedgerRepository(db),
		Settings: sqlstore.NewSettingsRepository(db),
		close:    sqlDB.Close,
	}, nil
}

func openDynamoDB(ctx context.Context, c config.DynamoDBConfig) (*Store, error) {
	ddb, err := database.ConnectDynamoDB(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	logrus.WithFields(logrus.Fields{"region": c.Region, "endpoint": c.Endpoint}).Info("[persistence] dynamodb store ready")
	return &Store{
		Jobs:     repository.NewJobDynamoRepository(ddb, c.JobsTable),
		Ledger:   repository.NewLedgerDynamoRepository(ddb, c.LedgerTable),
		Settings: repository.NewSettingsDynamoRepository(ddb, c.SettingsTable),
		close:    func() error { return nil },
	}, nil
}

// Close releases the backend. It is safe to call more than once.
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	err := s.close()
	s.close = nil
	return err
}

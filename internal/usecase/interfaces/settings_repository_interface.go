package interfaces

import (
	"context"
	"afclean/internal/domain/entities"
)

// ISettingsRepository abstracts the key/value settings table.
// Get returns found=false for a missing key.

type ISettingsRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Upsert(ctx context.Context, s entities.Setting) error
	List(ctx context.Context) ([]entities.Setting, error)
}

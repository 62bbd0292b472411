package interfaces

import (
	"context"
	"afclean/internal/domain/entities"
)

// ILedgerRepository abstracts persistence for LedgerEntry.
// List returns entries ordered by date descending.

type ILedgerRepository interface {
	Create(ctx context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error)
	List(ctx context.Context) ([]entities.LedgerEntry, error)
	Update(ctx context.Context, id string, changes entities.LedgerChanges) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

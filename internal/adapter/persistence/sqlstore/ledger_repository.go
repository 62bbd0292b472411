package sqlstore

import (
	"context"
	"fmt"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type LedgerRepository struct {
	db *gorm.DB
}

var _ interfaces.ILedgerRepository = (*LedgerRepository)(nil)

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Create(ctx context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
	m := toLedgerModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.LedgerEntry{}, err
	}
	return e, nil
}

func (r *LedgerRepository) List(ctx context.Context) ([]entities.LedgerEntry, error) {
	var rows []ledgerModel
	if err := r.db.WithContext(ctx).Order("date desc").Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.LedgerEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *LedgerRepository) Update(ctx context.Context, id string, changes entities.LedgerChanges) (int64, error) {
	cols := make(map[string]any, len(changes))
	for f, v := range changes {
		cv, err := columnValue(v)
		if err != nil {
			return 0, fmt.Errorf("ledger field %q: %w", f, err)
		}
		cols[string(f)] = cv
	}
	res := r.db.WithContext(ctx).Model(&ledgerModel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *LedgerRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ledgerModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *LedgerRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ledgerModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

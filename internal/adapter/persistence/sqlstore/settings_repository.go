package sqlstore

import (
	"context"
	"errors"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var m settingModel
	err := r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.Value, true, nil
}

// Upsert replaces the value of an existing key.
func (r *SettingsRepository) Upsert(ctx context.Context, s entities.Setting) error {
	m := settingModel{Key: s.Key, Value: s.Value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&m).Error
}

func (r *SettingsRepository) List(ctx context.Context) ([]entities.Setting, error) {
	var rows []settingModel
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Setting, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Setting{Key: m.Key, Value: m.Value})
	}
	return out, nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrInvalidSettingKey = errors.New("invalid setting key")

// ISettingsUseCase is the process-wide key/value registry (company name, logo).
// Set is an upsert; the last write wins.

type ISettingsUseCase interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, ErrInvalidSettingKey
	}
	v, found, err := u.repo.Get(ctx, key)
	if err != nil {
		return "", false, wrapPersistence(err)
	}
	return v, found, nil
}

func (u *SettingsUseCase) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidSettingKey
	}
	if err := u.repo.Upsert(ctx, entities.Setting{Key: key, Value: value}); err != nil {
		return wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"key": key, "value_len": len(value)}).Info("[settings][usecase] setting saved")
	return nil
}

func (u *SettingsUseCase) All(ctx context.Context) (map[string]string, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	out := make(map[string]string, len(list))
	for _, s := range list {
		out[s.Key] = s.Value
	}
	return out, nil
}

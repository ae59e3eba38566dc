package sqlite

import (
	"context"
	"strconv"

	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"
	"tether/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the domain.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (repo *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var settingM model.AppSettingModel

	if err := repo.db.WithContext(ctx).Where("key = ?", key).First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrSettingNotFound
		}

		return "", domainerrors.NewLocalStoreError(err, "failed to read setting")
	}

	return settingM.Value, nil
}

func (repo *settingsRepository) Set(ctx context.Context, key, value string) error {
	if err := upsertSetting(repo.db.WithContext(ctx), key, value); err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to write setting")
	}

	return nil
}

func (repo *settingsRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).Where("key = ?", key).Delete(&model.AppSettingModel{}).Error; err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to delete setting")
	}

	return nil
}

// IncrementCounter treats a missing or malformed value as zero.
func (repo *settingsRepository) IncrementCounter(ctx context.Context, key string, delta int64) (int64, error) {
	var next int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settingM model.AppSettingModel
		current := int64(0)

		err := tx.Where("key = ?", key).First(&settingM).Error
		switch {
		case err == nil:
			if parsed, parseErr := strconv.ParseInt(settingM.Value, 10, 64); parseErr == nil {
				current = parsed
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		next = current + delta

		return upsertSetting(tx, key, strconv.FormatInt(next, 10))
	})
	if err != nil {
		return 0, domainerrors.NewLocalStoreError(err, "failed to increment setting counter")
	}

	return next, nil
}

func upsertSetting(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model.AppSettingModel{Key: key, Value: value}).Error
}

package sqlite

import (
	"context"
	"time"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"
	"tether/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// SaveRecord appends a record and writes the generated ID back.
func (repo *locationRepository) SaveRecord(ctx context.Context, record *entity.LocationRecord) error {
	recordM := fromLocationRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to save location record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// LatestRecord returns the most recently sampled record of a user.
func (repo *locationRepository) LatestRecord(ctx context.Context, userID string) (*entity.LocationRecord, error) {
	var recordM model.LocationRecordModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sample_time DESC").
		Order("id DESC").
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, domainerrors.NewLocalStoreError(err, "failed to find latest location record")
	}

	return toLocationRecordDomain(&recordM), nil
}

// FindUnsynced returns unsynced records of a user, oldest first. A non-positive limit means no limit.
func (repo *locationRepository) FindUnsynced(ctx context.Context, userID string, limit int) ([]*entity.LocationRecord, error) {
	var recordModels []*model.LocationRecordModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND synced = ?", userID, false).
		Order("sample_time ASC").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewLocalStoreError(err, "failed to find unsynced location records")
	}

	records := make([]*entity.LocationRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toLocationRecordDomain(recordM))
	}

	return records, nil
}

// CountUnsynced counts the unsynced records of a user.
func (repo *locationRepository) CountUnsynced(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.LocationRecordModel{}).
		Where("user_id = ? AND synced = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewLocalStoreError(err, "failed to count unsynced location records")
	}

	return count, nil
}

// MarkSynced flips the synced flag of the given records.
func (repo *locationRepository) MarkSynced(ctx context.Context, ids []int64, syncedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.LocationRecordModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"synced": true, "synced_at": syncedAt}).Error
	if err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to mark location records synced")
	}

	return nil
}

// UpdateHeartbeat stamps the heartbeat time on a record.
func (repo *locationRepository) UpdateHeartbeat(ctx context.Context, id int64, heartbeatAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationRecordModel{}).
		Where("id = ?", id).
		Update("heartbeat_timestamp", heartbeatAt)
	if result.Error != nil {
		return domainerrors.NewLocalStoreError(result.Error, "failed to update heartbeat timestamp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// DeleteOlderThan removes records sampled before cutoff.
func (repo *locationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("sample_time < ?", cutoff).
		Delete(&model.LocationRecordModel{})
	if result.Error != nil {
		return 0, domainerrors.NewLocalStoreError(result.Error, "failed to delete old location records")
	}

	return result.RowsAffected, nil
}

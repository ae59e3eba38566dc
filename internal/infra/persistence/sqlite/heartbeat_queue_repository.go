package sqlite

import (
	"context"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"
	"tether/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// heartbeatQueueRepository implements the domain.HeartbeatQueueRepository interface.
type heartbeatQueueRepository struct {
	db *gorm.DB
}

// NewHeartbeatQueueRepository is the constructor for heartbeatQueueRepository.
func NewHeartbeatQueueRepository(db *gorm.DB) repository.HeartbeatQueueRepository {
	return &heartbeatQueueRepository{db: db}
}

func (repo *heartbeatQueueRepository) Enqueue(ctx context.Context, heartbeat *entity.QueuedHeartbeat) error {
	heartbeatM := fromQueuedHeartbeatDomain(heartbeat)

	if err := repo.db.WithContext(ctx).Create(heartbeatM).Error; err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to queue heartbeat")
	}

	heartbeat.ID = heartbeatM.ID
	heartbeat.CreatedAt = heartbeatM.CreatedAt

	return nil
}

func (repo *heartbeatQueueRepository) ListPending(ctx context.Context, userID string) ([]*entity.QueuedHeartbeat, error) {
	var heartbeatModels []*model.HeartbeatQueueModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("heartbeat_at ASC").
		Order("id ASC").
		Find(&heartbeatModels).Error
	if err != nil {
		return nil, domainerrors.NewLocalStoreError(err, "failed to list queued heartbeats")
	}

	heartbeats := make([]*entity.QueuedHeartbeat, 0, len(heartbeatModels))
	for _, heartbeatM := range heartbeatModels {
		heartbeats = append(heartbeats, toQueuedHeartbeatDomain(heartbeatM))
	}

	return heartbeats, nil
}

func (repo *heartbeatQueueRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.HeartbeatQueueModel{}).Error; err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to delete queued heartbeats")
	}

	return nil
}

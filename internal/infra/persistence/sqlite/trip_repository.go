package sqlite

import (
	"context"
	"time"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"
	"tether/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tripRepository implements the domain.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// CreateTrip persists a new trip, assigning an ID when missing.
func (repo *tripRepository) CreateTrip(ctx context.Context, trip *entity.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	tripM := fromTripDomain(trip)

	if err := repo.db.WithContext(ctx).Create(tripM).Error; err != nil {
		return domainerrors.NewLocalStoreError(err, "failed to create trip")
	}

	trip.CreatedAt = tripM.CreatedAt
	trip.UpdatedAt = tripM.UpdatedAt

	return nil
}

// UpdateTrip saves the full trip row.
func (repo *tripRepository) UpdateTrip(ctx context.Context, trip *entity.Trip) error {
	tripM := fromTripDomain(trip)

	result := repo.db.WithContext(ctx).
		Model(&model.TripModel{}).
		Where("id = ?", trip.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(tripM)
	if result.Error != nil {
		return domainerrors.NewLocalStoreError(result.Error, "failed to update trip")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	trip.UpdatedAt = tripM.UpdatedAt

	return nil
}

// FindActiveTrip returns the open trip of a user.
func (repo *tripRepository) FindActiveTrip(ctx context.Context, userID string) (*entity.Trip, error) {
	var tripM model.TripModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.TripStatusActive)).
		Order("start_time DESC").
		First(&tripM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, domainerrors.NewLocalStoreError(err, "failed to find active trip")
	}

	return toTripDomain(&tripM), nil
}

// ListTrips returns the newest trips of a user. A non-positive limit means no limit.
func (repo *tripRepository) ListTrips(ctx context.Context, userID string, limit int) ([]*entity.Trip, error) {
	var tripModels []*model.TripModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tripModels).Error; err != nil {
		return nil, domainerrors.NewLocalStoreError(err, "failed to list trips")
	}

	trips := make([]*entity.Trip, 0, len(tripModels))
	for _, tripM := range tripModels {
		trips = append(trips, toTripDomain(tripM))
	}

	return trips, nil
}

// AppendWaypoint adds a waypoint to a trip.
func (repo *tripRepository) AppendWaypoint(ctx context.Context, waypoint *entity.TripWaypoint) error {
	waypointM := fromWaypointDomain(waypoint)

	if err := repo.db.WithContext(ctx).Create(waypointM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateWaypoint, "trip %s sequence %d", waypoint.TripID, waypoint.Sequence)
		}

		return domainerrors.NewLocalStoreError(err, "failed to append waypoint")
	}

	waypoint.ID = waypointM.ID

	return nil
}

// ListWaypoints returns the waypoints of a trip ordered by sequence.
func (repo *tripRepository) ListWaypoints(ctx context.Context, tripID uuid.UUID) ([]*entity.TripWaypoint, error) {
	var waypointModels []*model.TripWaypointModel

	err := repo.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("sequence ASC").
		Find(&waypointModels).Error
	if err != nil {
		return nil, domainerrors.NewLocalStoreError(err, "failed to list waypoints")
	}

	waypoints := make([]*entity.TripWaypoint, 0, len(waypointModels))
	for _, waypointM := range waypointModels {
		waypoints = append(waypoints, toWaypointDomain(waypointM))
	}

	return waypoints, nil
}

// DeleteCompletedBefore removes completed trips that ended before cutoff along with their waypoints.
// Callers wanting atomicity run it inside a transaction.
func (repo *tripRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	db := repo.db.WithContext(ctx)

	var ids []uuid.UUID
	err := db.Model(&model.TripModel{}).
		Where("status = ? AND end_time IS NOT NULL AND end_time < ?", string(entity.TripStatusCompleted), cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, domainerrors.NewLocalStoreError(err, "failed to find expired trips")
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := db.Where("trip_id IN ?", ids).Delete(&model.TripWaypointModel{}).Error; err != nil {
		return 0, domainerrors.NewLocalStoreError(err, "failed to delete expired waypoints")
	}

	result := db.Where("id IN ?", ids).Delete(&model.TripModel{})
	if result.Error != nil {
		return 0, domainerrors.NewLocalStoreError(result.Error, "failed to delete expired trips")
	}

	return result.RowsAffected, nil
}

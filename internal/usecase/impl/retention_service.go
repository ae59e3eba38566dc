package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tether/config"
	"tether/internal/cache"
	"tether/internal/domain/repository"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"
	"tether/internal/usecase"

	"go.uber.org/fx"
)

type retentionService struct {
	mu      sync.Mutex
	running bool
	task    service.Task

	txManager repository.TransactionManager
	cache     *cache.Cache
	clock     service.Clock
	cfg       *config.StorageConfig
	logger    *slog.Logger
}

// RetentionParams holds dependencies for the retention cleanup, injected by Fx
type RetentionParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     *cache.Cache
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRetentionService creates the periodic local history cleanup
func NewRetentionService(params RetentionParams) usecase.RetentionUsecase {
	return &retentionService{
		txManager: params.TxManager,
		cache:     params.Cache,
		clock:     params.Clock,
		cfg:       params.Config.Storage,
		logger:    params.Logger,
	}
}

func (s *retentionService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.scheduleLocked()

	s.logger.Info("[Retention] Started",
		slog.Duration("interval", s.cfg.CleanupInterval),
		slog.Int("retention_days", s.cfg.RetentionDays),
	)
}

func (s *retentionService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}

	s.logger.Info("[Retention] Stopped")
}

func (s *retentionService) scheduleLocked() {
	s.task = s.clock.AfterFunc(s.cfg.CleanupInterval, s.tick)
}

func (s *retentionService) tick() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}
	s.task = nil
	s.mu.Unlock()

	if _, err := s.RunOnce(context.Background()); err != nil {
		s.logger.Error("[Retention] Cleanup failed", slog.Any("error", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && s.task == nil {
		s.scheduleLocked()
	}
}

// RunOnce deletes records and completed trips older than the retention window, then purges expired cache entries
func (s *retentionService) RunOnce(ctx context.Context) (usecase.RetentionResult, error) {
	cutoff := s.clock.Now().Add(-time.Duration(s.cfg.RetentionDays) * 24 * time.Hour)

	var result usecase.RetentionResult
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		records, err := repos.NewLocationRepository().DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		trips, err := repos.NewTripRepository().DeleteCompletedBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		result.LocationRecords, result.Trips = records, trips

		return nil
	})
	if err != nil {
		return usecase.RetentionResult{}, err
	}

	result.CacheEntries = s.cache.PurgeExpired()

	metrics.RetentionDeleted.WithLabelValues("location_records").Add(float64(result.LocationRecords))
	metrics.RetentionDeleted.WithLabelValues("trips").Add(float64(result.Trips))

	s.logger.Info("[Retention] Cleanup completed",
		slog.Time("cutoff", cutoff),
		slog.Int64("location_records", result.LocationRecords),
		slog.Int64("trips", result.Trips),
		slog.Int("cache_entries", result.CacheEntries),
	)

	return result, nil
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tether/config"
	"tether/internal/cache"
	"tether/internal/domain/entity"
	"tether/internal/domain/repository"
	"tether/internal/domain/service"
	"tether/internal/eventbus"
	"tether/internal/infra/persistence/sqlite"
	"tether/internal/infra/remote"
	"tether/internal/infra/scheduler"
	mockSvc "tether/internal/mocks/service"
	"tether/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

var baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Storage.Path = ":memory:"

	return cfg
}

func userRef(userID string) service.DocumentRef {
	return service.DocumentRef{Collection: "users", ID: userID}
}

// testEnv wires the real services over an in-memory database, the in-memory
// remote store and a manual clock
type testEnv struct {
	cfg       *config.Config
	clock     *scheduler.ManualClock
	remote    *remote.MemoryStore
	bus       *eventbus.Bus
	cache     *cache.Cache
	publisher *mockSvc.MockEventPublisher

	locationRepo repository.LocationRepository
	tripRepo     repository.TripRepository
	settingsRepo repository.SettingsRepository
	queueRepo    repository.HeartbeatQueueRepository
	txManager    repository.TransactionManager

	heartbeat usecase.HeartbeatUsecase
	tracker   usecase.TrackerUsecase
	subs      usecase.SubscriptionUsecase
	sync      usecase.SyncUsecase
	retention usecase.RetentionUsecase
	engine    usecase.EngineUsecase

	eventsMu sync.Mutex
	events   []*service.PresenceEvent
}

func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	logger := newDiscardLogger()

	db, err := sqlite.Open(cfg.Storage.Path, logger, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	env := &testEnv{
		cfg:          cfg,
		clock:        scheduler.NewManualClock(baseTime),
		remote:       remote.NewMemoryStore(),
		bus:          eventbus.New(logger),
		publisher:    mockSvc.NewMockEventPublisher(t),
		locationRepo: sqlite.NewLocationRepository(db),
		tripRepo:     sqlite.NewTripRepository(db),
		settingsRepo: sqlite.NewSettingsRepository(db),
		queueRepo:    sqlite.NewHeartbeatQueueRepository(db),
		txManager:    sqlite.NewTransactionManager(db),
	}
	env.cache = cache.NewCache(env.clock, cfg.Cache.DefaultTTL, logger)

	env.publisher.EXPECT().PublishPresenceEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.PresenceEvent) {
			env.eventsMu.Lock()
			env.events = append(env.events, event)
			env.eventsMu.Unlock()
		}).
		Return(nil).Maybe()

	env.heartbeat = NewHeartbeatService(HeartbeatParams{
		LocationRepo: env.locationRepo,
		QueueRepo:    env.queueRepo,
		Remote:       env.remote,
		Clock:        env.clock,
		Config:       cfg,
		Logger:       logger,
	})
	env.tracker = NewTrackerService(TrackerParams{
		LocationRepo: env.locationRepo,
		TripRepo:     env.tripRepo,
		SettingsRepo: env.settingsRepo,
		TxManager:    env.txManager,
		Remote:       env.remote,
		Publisher:    env.publisher,
		Heartbeat:    env.heartbeat,
		Bus:          env.bus,
		Clock:        env.clock,
		Config:       cfg,
		Logger:       logger,
	})
	env.subs = NewSubscriptionManager(env.remote, env.clock, cfg, logger)
	env.sync = NewSyncCoordinator(SyncParams{
		Subscriptions: env.subs,
		Tracker:       env.tracker,
		Heartbeat:     env.heartbeat,
		Cache:         env.cache,
		Bus:           env.bus,
		Clock:         env.clock,
		Config:        cfg,
		Logger:        logger,
	})
	env.retention = NewRetentionService(RetentionParams{
		TxManager: env.txManager,
		Cache:     env.cache,
		Clock:     env.clock,
		Config:    cfg,
		Logger:    logger,
	})
	env.engine = NewEngine(EngineParams{
		Sync:          env.sync,
		Tracker:       env.tracker,
		Heartbeat:     env.heartbeat,
		Subscriptions: env.subs,
		Retention:     env.retention,
		LocationRepo:  env.locationRepo,
		TripRepo:      env.tripRepo,
		SettingsRepo:  env.settingsRepo,
		Bus:           env.bus,
		Logger:        logger,
	})

	return env
}

func (e *testEnv) presenceEvents() []*service.PresenceEvent {
	e.eventsMu.Lock()
	defer e.eventsMu.Unlock()

	return append([]*service.PresenceEvent(nil), e.events...)
}

// writesWithMode returns the accepted remote writes of one mode
func (e *testEnv) writesWithMode(mode service.WriteMode) []remote.MemoryWrite {
	var writes []remote.MemoryWrite
	for _, write := range e.remote.Writes() {
		if write.Mode == mode {
			writes = append(writes, write)
		}
	}

	return writes
}

type sampleOption func(*entity.DeviceStateSample)

func withMotion(motion entity.MotionState) sampleOption {
	return func(s *entity.DeviceStateSample) { s.Motion = motion }
}

func withBattery(level int, charging bool) sampleOption {
	return func(s *entity.DeviceStateSample) {
		s.BatteryLevel = level
		s.IsCharging = charging
	}
}

// withOffsetMeters moves the sample roughly north by meters
func withOffsetMeters(meters float64) sampleOption {
	return func(s *entity.DeviceStateSample) { s.Latitude += meters / 111_319.49 }
}

func withSpeed(speed float64) sampleOption {
	return func(s *entity.DeviceStateSample) { s.Speed = &speed }
}

func newSample(at time.Time, opts ...sampleOption) *entity.DeviceStateSample {
	sample := &entity.DeviceStateSample{
		UserID:          testUserID,
		Latitude:        25.0330,
		Longitude:       121.5654,
		BatteryLevel:    50,
		Motion:          entity.MotionStationary,
		Timestamp:       at,
		LocationEnabled: true,
	}
	for _, opt := range opts {
		opt(sample)
	}

	return sample
}

package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tether/config"
	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"
	"tether/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type heartbeatService struct {
	mu sync.Mutex

	running    bool
	userID     string
	generation uint64
	task       service.Task
	nextDue    *time.Time
	lastBeat   *time.Time
	failures   int
	fallback   bool

	locationRepo repository.LocationRepository
	queueRepo    repository.HeartbeatQueueRepository
	remote       service.RemoteStore
	clock        service.Clock
	cfg          *config.HeartbeatConfig
	collection   string
	logger       *slog.Logger
}

// HeartbeatParams holds dependencies for the heartbeat scheduler, injected by Fx
type HeartbeatParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	QueueRepo    repository.HeartbeatQueueRepository
	Remote       service.RemoteStore
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewHeartbeatService creates the liveness scheduler
func NewHeartbeatService(params HeartbeatParams) usecase.HeartbeatUsecase {
	return &heartbeatService{
		locationRepo: params.LocationRepo,
		queueRepo:    params.QueueRepo,
		remote:       params.Remote,
		clock:        params.Clock,
		cfg:          params.Config.Heartbeat,
		collection:   params.Config.Remote.UsersCollection,
		logger:       params.Logger,
	}
}

func (s *heartbeatService) Start(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = true
	s.userID = userID
	s.failures = 0
	s.setFallback(false)
	s.generation++
	s.scheduleLocked(s.cfg.Interval)

	s.logger.Info("[Heartbeat] Started",
		slog.String("user_id", userID),
		slog.Duration("interval", s.cfg.Interval),
	)
}

func (s *heartbeatService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancelLocked()
	s.running = false
	s.generation++
	s.failures = 0
	s.setFallback(false)

	s.logger.Info("[Heartbeat] Stopped", slog.String("user_id", s.userID))
}

func (s *heartbeatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.generation++
	s.scheduleLocked(s.currentIntervalLocked())
}

// ForceHeartbeat sends a full beat now; success restarts the regular schedule
func (s *heartbeatService) ForceHeartbeat(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return domainerrors.NewNotInitializedError("heartbeat is not running")
	}
	userID := s.userID
	generation := s.generation
	s.mu.Unlock()

	at := s.clock.Now()
	if err := s.send(ctx, userID, at, false); err != nil {
		metrics.Heartbeats.WithLabelValues("failure").Inc()

		return err
	}
	metrics.Heartbeats.WithLabelValues("success").Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation == s.generation {
		s.succeedLocked(at)
	}

	return nil
}

// FlushQueued writes the newest queued beat; older ones are superseded by it
func (s *heartbeatService) FlushQueued(ctx context.Context, userID string) error {
	queued, err := s.queueRepo.ListPending(ctx, userID)
	if err != nil {
		return err
	}
	if len(queued) == 0 {
		return nil
	}

	newest := queued[len(queued)-1]
	fields := heartbeatFields(newest.BatteryLevel, newest.IsCharging, newest.HeartbeatAt)
	if newest.Minimal {
		fields = minimalHeartbeatFields(newest.HeartbeatAt)
	}

	if err := s.remote.Write(ctx, s.userRef(userID), fields, service.WriteModeHeartbeatOnly); err != nil {
		return err
	}

	ids := make([]int64, 0, len(queued))
	for _, heartbeat := range queued {
		ids = append(ids, heartbeat.ID)
	}
	if err := s.queueRepo.Delete(ctx, ids); err != nil {
		return err
	}
	metrics.Heartbeats.WithLabelValues("flushed").Inc()

	s.logger.Info("[Heartbeat] Flushed queued beats",
		slog.String("user_id", userID),
		slog.Int("count", len(ids)),
	)

	return nil
}

func (s *heartbeatService) Status() usecase.HeartbeatStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := usecase.HeartbeatStatus{
		Running:             s.running,
		UserID:              s.userID,
		ConsecutiveFailures: s.failures,
		FallbackMode:        s.fallback,
		Interval:            s.currentIntervalLocked(),
	}
	if s.lastBeat != nil {
		last := *s.lastBeat
		status.LastBeat = &last
	}
	if s.nextDue != nil {
		next := *s.nextDue
		status.NextDue = &next
	}

	return status
}

func (s *heartbeatService) userRef(userID string) service.DocumentRef {
	return service.DocumentRef{Collection: s.collection, ID: userID}
}

func (s *heartbeatService) currentIntervalLocked() time.Duration {
	if s.fallback {
		return s.cfg.FallbackInterval
	}

	return s.cfg.Interval
}

func (s *heartbeatService) setFallback(on bool) {
	s.fallback = on
	if on {
		metrics.HeartbeatFallback.Set(1)
	} else {
		metrics.HeartbeatFallback.Set(0)
	}
}

func (s *heartbeatService) cancelLocked() {
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
	s.nextDue = nil
}

// scheduleLocked replaces the pending timer; the callback is bound to the current generation
func (s *heartbeatService) scheduleLocked(d time.Duration) {
	s.cancelLocked()

	generation := s.generation
	due := s.clock.Now().Add(d)
	s.nextDue = &due
	s.task = s.clock.AfterFunc(d, func() {
		s.fire(generation)
	})
}

// retryDelay doubles from the base delay, capped at the max delay
func (s *heartbeatService) retryDelay(failures int) time.Duration {
	delay := s.cfg.RetryBaseDelay
	for i := 1; i < failures; i++ {
		delay *= 2
		if delay >= s.cfg.RetryMaxDelay {
			return s.cfg.RetryMaxDelay
		}
	}
	if delay > s.cfg.RetryMaxDelay {
		return s.cfg.RetryMaxDelay
	}

	return delay
}

// fire runs one scheduled beat
func (s *heartbeatService) fire(generation uint64) {
	s.mu.Lock()
	if !s.running || generation != s.generation {
		s.mu.Unlock()

		return
	}
	s.task = nil
	s.nextDue = nil
	userID := s.userID
	fallback := s.fallback
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	at := s.clock.Now()
	err := s.send(ctx, userID, at, false)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stopped or reset while the write was in flight
	if !s.running || generation != s.generation {
		return
	}

	if err == nil {
		metrics.Heartbeats.WithLabelValues("success").Inc()
		s.succeedLocked(at)

		return
	}

	metrics.Heartbeats.WithLabelValues("failure").Inc()
	s.failures++
	s.logger.Warn("[Heartbeat] Beat failed",
		slog.String("user_id", userID),
		slog.Int("consecutive_failures", s.failures),
		slog.Any("error", err),
	)

	if !fallback && s.failures < s.cfg.MaxConsecutiveFailures {
		s.scheduleLocked(s.retryDelay(s.failures))

		return
	}

	if !fallback {
		s.setFallback(true)
		s.logger.Warn("[Heartbeat] Entering fallback mode",
			slog.String("user_id", userID),
			slog.Duration("interval", s.cfg.FallbackInterval),
		)
	}

	s.mu.Unlock()
	minimalErr := s.send(ctx, userID, at, true)
	if minimalErr != nil {
		s.enqueue(ctx, userID, at)
	}
	s.mu.Lock()

	if !s.running || generation != s.generation {
		return
	}
	if minimalErr == nil {
		metrics.Heartbeats.WithLabelValues("minimal").Inc()
		s.succeedLocked(at)

		return
	}
	s.scheduleLocked(s.cfg.FallbackInterval)
}

// succeedLocked clears failures, leaves fallback and schedules the regular interval
func (s *heartbeatService) succeedLocked(at time.Time) {
	beat := at
	s.lastBeat = &beat
	s.failures = 0
	if s.fallback {
		s.setFallback(false)
		s.logger.Info("[Heartbeat] Leaving fallback mode", slog.String("user_id", s.userID))
	}
	s.scheduleLocked(s.cfg.Interval)
}

func (s *heartbeatService) timeout() time.Duration {
	if s.cfg.Timeout <= 0 {
		return 10 * time.Second
	}

	return s.cfg.Timeout
}

// send writes a beat and stamps it on the newest record. A minimal beat carries only the timestamp.
func (s *heartbeatService) send(ctx context.Context, userID string, at time.Time, minimal bool) error {
	latest, err := s.locationRepo.LatestRecord(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		s.logger.Warn("[Heartbeat] Failed to load latest record", slog.Any("error", err))
	}

	fields := minimalHeartbeatFields(at)
	if !minimal && latest != nil {
		fields = heartbeatFields(latest.BatteryLevel, latest.IsCharging, at)
	}

	if err := s.remote.Write(ctx, s.userRef(userID), fields, service.WriteModeHeartbeatOnly); err != nil {
		return err
	}

	if latest != nil {
		if err := s.locationRepo.UpdateHeartbeat(ctx, latest.ID, at); err != nil {
			s.logger.Warn("[Heartbeat] Failed to stamp local record",
				slog.Int64("record_id", latest.ID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (s *heartbeatService) enqueue(ctx context.Context, userID string, at time.Time) {
	heartbeat := &entity.QueuedHeartbeat{
		UserID:      userID,
		HeartbeatAt: at,
		Minimal:     true,
		Attempts:    2,
	}
	if latest, err := s.locationRepo.LatestRecord(ctx, userID); err == nil {
		heartbeat.BatteryLevel = latest.BatteryLevel
		heartbeat.IsCharging = latest.IsCharging
		heartbeat.Minimal = false
	}

	if err := s.queueRepo.Enqueue(ctx, heartbeat); err != nil {
		s.logger.Error("[Heartbeat] Failed to queue beat",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return
	}
	metrics.Heartbeats.WithLabelValues("queued").Inc()
}

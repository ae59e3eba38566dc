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
	"tether/internal/eventbus"
	"tether/internal/infra/metrics"
	"tether/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userTrack is the in-memory state machine of one user
type userTrack struct {
	state        usecase.TrackerState
	dwellStart   *time.Time
	geofence     *entity.Geofence
	exitStreak   int
	trip         *entity.Trip
	lastWaypoint *entity.TripWaypoint
	lastRecord   *entity.LocationRecord

	// Last battery values acknowledged by the remote store
	hasRemoteBattery   bool
	remoteBatteryLevel int
	remoteCharging     bool
}

// transition is what one sample changed, applied after the ingestion lock is released
type transition struct {
	arrived  bool
	departed bool
	geofence *entity.Geofence
	at       time.Time
	position entity.Coordinate
	address  *string
}

type trackerService struct {
	mu     sync.Mutex
	tracks map[string]*userTrack

	locationRepo repository.LocationRepository
	tripRepo     repository.TripRepository
	settingsRepo repository.SettingsRepository
	txManager    repository.TransactionManager
	remote       service.RemoteStore
	publisher    service.EventPublisher
	heartbeat    usecase.HeartbeatUsecase
	bus          *eventbus.Bus
	clock        service.Clock
	cfg          *config.TrackingConfig
	collection   string
	logger       *slog.Logger
}

// TrackerParams holds dependencies for the tracker, injected by Fx
type TrackerParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	TripRepo     repository.TripRepository
	SettingsRepo repository.SettingsRepository
	TxManager    repository.TransactionManager
	Remote       service.RemoteStore
	Publisher    service.EventPublisher
	Heartbeat    usecase.HeartbeatUsecase
	Bus          *eventbus.Bus
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTrackerService creates the geofence and trip state machine
func NewTrackerService(params TrackerParams) usecase.TrackerUsecase {
	return &trackerService{
		tracks:       make(map[string]*userTrack),
		locationRepo: params.LocationRepo,
		tripRepo:     params.TripRepo,
		settingsRepo: params.SettingsRepo,
		txManager:    params.TxManager,
		remote:       params.Remote,
		publisher:    params.Publisher,
		heartbeat:    params.Heartbeat,
		bus:          params.Bus,
		clock:        params.Clock,
		cfg:          params.Config.Tracking,
		collection:   params.Config.Remote.UsersCollection,
		logger:       params.Logger,
	}
}

func (s *trackerService) trackFor(userID string) *userTrack {
	track, ok := s.tracks[userID]
	if !ok {
		track = &userTrack{state: usecase.TrackerMoving}
		s.tracks[userID] = track
	}

	return track
}

func (s *trackerService) userRef(userID string) service.DocumentRef {
	return service.DocumentRef{Collection: s.collection, ID: userID}
}

// ProcessSample ingests one sample
func (s *trackerService) ProcessSample(ctx context.Context, sample *entity.DeviceStateSample) error {
	if sample == nil {
		metrics.SamplesIngested.WithLabelValues("invalid").Inc()

		return domainerrors.NewValidationError(domainerrors.ErrInvalidSample, "sample is required")
	}
	if err := sample.Validate(); err != nil {
		metrics.SamplesIngested.WithLabelValues("invalid").Inc()

		return domainerrors.NewValidationError(domainerrors.ErrInvalidSample, err.Error())
	}

	normalized := *sample
	normalized.Timestamp = sample.Timestamp.UTC()

	s.mu.Lock()
	outcome := s.ingest(ctx, &normalized)
	s.mu.Unlock()

	s.announce(ctx, normalized.UserID, outcome)
	metrics.SamplesIngested.WithLabelValues("ok").Inc()

	return nil
}

// ingest runs the state machine, persistence and remote write; callers hold mu.
func (s *trackerService) ingest(ctx context.Context, sample *entity.DeviceStateSample) transition {
	track := s.trackFor(sample.UserID)
	outcome := s.advance(track, sample)

	switch {
	case outcome.arrived:
		s.heartbeat.Start(sample.UserID)
	case outcome.departed:
		s.heartbeat.Stop()
	}

	record := entity.NewLocationRecord(sample, s.arrivalTimestamp(track, sample), track.geofence)

	if outcome.arrived && track.trip != nil {
		s.closeTripAndSave(ctx, track, sample, record)
	} else {
		s.updateTrip(ctx, track, sample, outcome.departed)
		if err := s.locationRepo.SaveRecord(ctx, record); err != nil {
			s.logger.Error("[Tracker] Failed to save location record",
				slog.String("user_id", sample.UserID),
				slog.Any("error", err),
			)
		}
	}
	track.lastRecord = record

	s.writeRemote(ctx, track, record, outcome)

	return outcome
}

// advance moves the state machine for one sample
func (s *trackerService) advance(track *userTrack, sample *entity.DeviceStateSample) transition {
	outcome := transition{at: sample.Timestamp, position: sample.Coordinate(), address: sample.Address}
	stationary := sample.IsStationary()

	switch track.state {
	case usecase.TrackerStationaryGeofenced:
		if distanceMeters(track.geofence.Center, sample.Coordinate()) <= track.geofence.RadiusMeters {
			track.exitStreak = 0

			return outcome
		}

		track.exitStreak++
		if stationary && track.exitStreak < s.exitConfirmations() {
			return outcome
		}

		track.geofence = nil
		track.exitStreak = 0
		track.dwellStart = nil
		track.state = usecase.TrackerMoving
		outcome.departed = true
		metrics.GeofenceTransitions.WithLabelValues("departed").Inc()

		if stationary {
			s.startDwell(track, sample.Timestamp)
		}

		return outcome

	case usecase.TrackerStationaryPending:
		if !stationary {
			track.state = usecase.TrackerMoving
			track.dwellStart = nil

			return outcome
		}

	case usecase.TrackerMoving:
		if !stationary {
			return outcome
		}
		s.startDwell(track, sample.Timestamp)
	}

	if track.geofence == nil && sample.Timestamp.Sub(*track.dwellStart) >= s.cfg.DwellThreshold {
		track.geofence = &entity.Geofence{
			Center:       sample.Coordinate(),
			RadiusMeters: s.cfg.GeofenceRadiusMeters,
			EntryTime:    *track.dwellStart,
		}
		track.state = usecase.TrackerStationaryGeofenced
		track.exitStreak = 0
		outcome.arrived = true
		outcome.geofence = track.geofence
		metrics.GeofenceTransitions.WithLabelValues("arrived").Inc()
	}

	return outcome
}

func (s *trackerService) startDwell(track *userTrack, at time.Time) {
	start := at
	track.dwellStart = &start
	track.state = usecase.TrackerStationaryPending
}

func (s *trackerService) exitConfirmations() int {
	if s.cfg.ExitConfirmations < 1 {
		return 1
	}

	return s.cfg.ExitConfirmations
}

// arrivalTimestamp is the dwell start while geofenced, the sample time for the
// first-ever sample, and otherwise unchanged from the prior record
func (s *trackerService) arrivalTimestamp(track *userTrack, sample *entity.DeviceStateSample) time.Time {
	switch {
	case track.geofence != nil:
		return track.geofence.EntryTime
	case track.lastRecord == nil:
		return sample.Timestamp
	default:
		return track.lastRecord.ArrivalTimestamp
	}
}

// updateTrip opens a trip on departure or extends the active one
func (s *trackerService) updateTrip(ctx context.Context, track *userTrack, sample *entity.DeviceStateSample, departed bool) {
	if departed {
		trip, first := newTrip(sample)
		if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
			s.logTripError("create", trip.ID, err)
		} else if err := s.tripRepo.AppendWaypoint(ctx, first); err != nil {
			s.logTripError("append waypoint", trip.ID, err)
		}
		track.trip = trip
		track.lastWaypoint = first

		return
	}

	if track.trip == nil {
		return
	}

	next := waypointFromSample(track.trip.ID, s.nextSequence(track), sample)
	appendWaypoint(track.trip, track.lastWaypoint, next)
	track.lastWaypoint = next

	if err := s.tripRepo.AppendWaypoint(ctx, next); err != nil {
		s.logTripError("append waypoint", track.trip.ID, err)
	}
	if err := s.tripRepo.UpdateTrip(ctx, track.trip); err != nil {
		s.logTripError("update", track.trip.ID, err)
	}
}

// closeTripAndSave ends the open trip and saves the arrival record atomically
func (s *trackerService) closeTripAndSave(ctx context.Context, track *userTrack, sample *entity.DeviceStateSample, record *entity.LocationRecord) {
	trip := track.trip
	last := waypointFromSample(trip.ID, s.nextSequence(track), sample)
	appendWaypoint(trip, track.lastWaypoint, last)
	closeTrip(trip, sample.Coordinate(), sample.Timestamp)

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		tripRepo := repos.NewTripRepository()
		if err := tripRepo.AppendWaypoint(ctx, last); err != nil {
			return err
		}
		if err := tripRepo.UpdateTrip(ctx, trip); err != nil {
			return err
		}

		return repos.NewLocationRepository().SaveRecord(ctx, record)
	})
	if err != nil {
		s.logTripError("close", trip.ID, err)
	}

	s.logger.Info("[Tracker] Trip completed",
		slog.String("user_id", trip.UserID),
		slog.String("trip_id", trip.ID.String()),
		slog.Float64("distance_meters", trip.DistanceMeters),
		slog.Int("waypoints", trip.WaypointCount),
	)

	track.trip = nil
	track.lastWaypoint = nil
}

func (s *trackerService) nextSequence(track *userTrack) int {
	if track.lastWaypoint == nil {
		return 1
	}

	return track.lastWaypoint.Sequence + 1
}

func (s *trackerService) logTripError(op string, tripID uuid.UUID, err error) {
	s.logger.Error("[Tracker] Trip persistence failed",
		slog.String("op", op),
		slog.String("trip_id", tripID.String()),
		slog.Any("error", err),
	)
}

// writeRemote sends a full write on geofence changes and a battery-only write
// when the battery moved enough since the last acknowledged write
func (s *trackerService) writeRemote(ctx context.Context, track *userTrack, record *entity.LocationRecord, outcome transition) {
	var (
		mode   service.WriteMode
		fields map[string]any
	)
	now := s.clock.Now()

	switch {
	case outcome.arrived || outcome.departed:
		mode = service.WriteModeFull
		fields = fullFields(record, now)
	case !track.hasRemoteBattery:
		// The first sample only establishes the baseline
		track.hasRemoteBattery = true
		track.remoteBatteryLevel = record.BatteryLevel
		track.remoteCharging = record.IsCharging

		return
	case s.batteryChanged(track, record):
		mode = service.WriteModeBatteryOnly
		fields = batteryOnlyFields(record.BatteryLevel, record.IsCharging, now)
	default:
		return
	}

	if err := s.remote.Write(ctx, s.userRef(record.UserID), fields, mode); err != nil {
		s.logger.Warn("[Tracker] Remote write failed, queued for reconnect",
			slog.String("user_id", record.UserID),
			slog.String("mode", string(mode)),
			slog.Any("error", err),
		)
		s.incrementPending(ctx)

		return
	}

	track.hasRemoteBattery = true
	track.remoteBatteryLevel = record.BatteryLevel
	track.remoteCharging = record.IsCharging
	s.heartbeat.Reset()
	s.markSynced(ctx, record, now)
}

func (s *trackerService) batteryChanged(track *userTrack, record *entity.LocationRecord) bool {
	delta := record.BatteryLevel - track.remoteBatteryLevel
	if delta < 0 {
		delta = -delta
	}

	return delta >= s.cfg.BatteryDeltaThreshold || record.IsCharging != track.remoteCharging
}

func (s *trackerService) markSynced(ctx context.Context, record *entity.LocationRecord, at time.Time) {
	record.Synced = true
	syncedAt := at
	record.SyncedAt = &syncedAt
	if record.ID == 0 {
		return
	}

	if err := s.locationRepo.MarkSynced(ctx, []int64{record.ID}, at); err != nil {
		s.logger.Error("[Tracker] Failed to mark record synced",
			slog.Int64("record_id", record.ID),
			slog.Any("error", err),
		)
	}
}

func (s *trackerService) incrementPending(ctx context.Context) {
	count, err := s.settingsRepo.IncrementCounter(ctx, repository.SettingPendingSyncCount, 1)
	if err != nil {
		s.logger.Error("[Tracker] Failed to count pending sync", slog.Any("error", err))

		return
	}
	metrics.PendingSyncRecords.Set(float64(count))
}

// announce publishes geofence transitions outside the ingestion lock
func (s *trackerService) announce(ctx context.Context, userID string, outcome transition) {
	if !outcome.arrived && !outcome.departed {
		return
	}

	change := eventbus.GeofenceChanged{UserID: userID, Active: outcome.arrived}
	event := &service.PresenceEvent{
		EventID:    uuid.NewString(),
		UserID:     userID,
		Latitude:   outcome.position.Latitude,
		Longitude:  outcome.position.Longitude,
		OccurredAt: outcome.at,
	}
	if outcome.address != nil {
		event.Address = *outcome.address
	}

	if outcome.arrived {
		center := outcome.geofence.Center
		entry := outcome.geofence.EntryTime
		change.Center = &center
		change.EntryTime = &entry
		event.Kind = service.PresenceArrived
		event.Latitude = center.Latitude
		event.Longitude = center.Longitude
		event.ArrivedAt = &entry
	} else {
		event.Kind = service.PresenceDeparted
	}

	s.logger.Info("[Tracker] Geofence changed",
		slog.String("user_id", userID),
		slog.String("kind", string(event.Kind)),
	)

	eventbus.Publish(ctx, s.bus, eventbus.TopicGeofenceChanged, change)

	if err := s.publisher.PublishPresenceEvent(ctx, event); err != nil {
		s.logger.Warn("[Tracker] Failed to publish presence event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

// Hydrate restores the state machine from the newest local record and active trip
func (s *trackerService) Hydrate(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	track := &userTrack{state: usecase.TrackerMoving}
	s.tracks[userID] = track

	latest, err := s.locationRepo.LatestRecord(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
	case err != nil:
		return err
	default:
		track.lastRecord = latest
		track.hasRemoteBattery = true
		track.remoteBatteryLevel = latest.BatteryLevel
		track.remoteCharging = latest.IsCharging

		if latest.Geofence != nil {
			geofence := *latest.Geofence
			track.geofence = &geofence
			track.state = usecase.TrackerStationaryGeofenced
		} else if latest.IsStationary {
			s.startDwell(track, latest.SampleTime)
		}
	}

	trip, err := s.tripRepo.FindActiveTrip(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrTripNotFound):
		return nil
	case err != nil:
		return err
	}

	if track.geofence != nil {
		// A trip cannot stay open inside a geofence
		end := track.geofence.EntryTime
		closeTrip(trip, track.geofence.Center, end)

		return s.tripRepo.UpdateTrip(ctx, trip)
	}

	waypoints, err := s.tripRepo.ListWaypoints(ctx, trip.ID)
	if err != nil {
		return err
	}
	track.trip = trip
	if len(waypoints) > 0 {
		track.lastWaypoint = waypoints[len(waypoints)-1]
	}

	s.logger.Info("[Tracker] State restored",
		slog.String("user_id", userID),
		slog.String("state", string(track.state)),
	)

	return nil
}

// SyncPending writes the newest unsynced record in full and marks the backlog synced
func (s *trackerService) SyncPending(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.locationRepo.FindUnsynced(ctx, userID, 0)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	newest := pending[len(pending)-1]
	now := s.clock.Now()
	if err := s.remote.Write(ctx, s.userRef(userID), fullFields(newest, now), service.WriteModeFull); err != nil {
		return err
	}

	ids := make([]int64, 0, len(pending))
	for _, record := range pending {
		ids = append(ids, record.ID)
	}
	if err := s.locationRepo.MarkSynced(ctx, ids, now); err != nil {
		return err
	}

	if track, ok := s.tracks[userID]; ok {
		track.hasRemoteBattery = true
		track.remoteBatteryLevel = newest.BatteryLevel
		track.remoteCharging = newest.IsCharging
		if track.lastRecord != nil && track.lastRecord.ID <= newest.ID {
			track.lastRecord.Synced = true
		}
	}
	s.heartbeat.Reset()

	if err := s.settingsRepo.Set(ctx, repository.SettingPendingSyncCount, "0"); err != nil {
		s.logger.Warn("[Tracker] Failed to reset pending sync count", slog.Any("error", err))
	}
	if err := s.settingsRepo.Set(ctx, repository.SettingLastSyncTime, now.Format(time.RFC3339Nano)); err != nil {
		s.logger.Warn("[Tracker] Failed to store last sync time", slog.Any("error", err))
	}
	metrics.PendingSyncRecords.Set(0)

	s.logger.Info("[Tracker] Pending records synced",
		slog.String("user_id", userID),
		slog.Int("records", len(ids)),
	)

	return nil
}

// Snapshot returns a copy of a user's state
func (s *trackerService) Snapshot(userID string) usecase.TrackerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := usecase.TrackerSnapshot{UserID: userID, State: usecase.TrackerMoving}
	track, ok := s.tracks[userID]
	if !ok {
		return snapshot
	}

	snapshot.State = track.state
	snapshot.ExitStreak = track.exitStreak
	if track.geofence != nil {
		geofence := *track.geofence
		snapshot.Geofence = &geofence
	}
	if track.dwellStart != nil {
		start := *track.dwellStart
		snapshot.DwellStart = &start
	}
	if track.trip != nil {
		id := track.trip.ID
		snapshot.ActiveTripID = &id
	}
	if track.lastRecord != nil {
		record := *track.lastRecord
		snapshot.LastRecord = &record
	}

	return snapshot
}

func (s *trackerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracks = make(map[string]*userTrack)
}

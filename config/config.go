package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage configures the on-device SQLite store
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Tracking configures the geofence and trip state machine
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// Heartbeat configures liveness pings while inside a geofence
	Heartbeat *HeartbeatConfig `json:"heartbeat" yaml:"heartbeat"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Sync configures the coordinator retry policy and health window
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// Remote configures the remote document store
	Remote *RemoteConfig `json:"remote" yaml:"remote"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for presence event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the local persistent store
type StorageConfig struct {
	// Path to the SQLite database file, or ":memory:"
	Path string `json:"path" yaml:"path"`

	RetentionDays   int           `json:"retentionDays" yaml:"retentionDays" validate:"gte=1"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// TrackingConfig defines geofence activation and exit rules
type TrackingConfig struct {
	DwellThreshold        time.Duration `json:"dwellThreshold" yaml:"dwellThreshold"`
	GeofenceRadiusMeters  float64       `json:"geofenceRadiusMeters" yaml:"geofenceRadiusMeters" validate:"gt=0"`
	ExitConfirmations     int           `json:"exitConfirmations" yaml:"exitConfirmations" validate:"gte=1"`
	BatteryDeltaThreshold int           `json:"batteryDeltaThreshold" yaml:"batteryDeltaThreshold" validate:"gte=1"`
}

// HeartbeatConfig defines the liveness schedule and its failure handling
type HeartbeatConfig struct {
	Interval               time.Duration `json:"interval" yaml:"interval"`
	FallbackInterval       time.Duration `json:"fallbackInterval" yaml:"fallbackInterval"`
	RetryBaseDelay         time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`
	RetryMaxDelay          time.Duration `json:"retryMaxDelay" yaml:"retryMaxDelay"`
	MaxConsecutiveFailures int           `json:"maxConsecutiveFailures" yaml:"maxConsecutiveFailures" validate:"gte=1"`
	Timeout                time.Duration `json:"timeout" yaml:"timeout"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `json:"defaultTtl" yaml:"defaultTtl"`
}

// SyncConfig defines the retry wrapper defaults and the health window
type SyncConfig struct {
	MaxRetries        int           `json:"maxRetries" yaml:"maxRetries" validate:"gte=0"`
	BaseDelay         time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay          time.Duration `json:"maxDelay" yaml:"maxDelay"`
	BackoffMultiplier float64       `json:"backoffMultiplier" yaml:"backoffMultiplier" validate:"gte=1"`
	HealthyWindow     time.Duration `json:"healthyWindow" yaml:"healthyWindow"`
	MaxErrorCount     int           `json:"maxErrorCount" yaml:"maxErrorCount" validate:"gte=1"`
}

// RemoteConfig defines the remote document store
type RemoteConfig struct {
	// Provider type: "firestore" or "memory"
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=firestore memory"`

	// Collection holding one document per user
	UsersCollection string `json:"usersCollection" yaml:"usersCollection"`

	// Timeout applied to each remote call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig defines the circuit breaker around remote calls
type BreakerConfig struct {
	MaxRequests         uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval            time.Duration `json:"interval" yaml:"interval"`
	Timeout             time.Duration `json:"timeout" yaml:"timeout"`
	ConsecutiveFailures uint32        `json:"consecutiveFailures" yaml:"consecutiveFailures"`
}

// FirebaseConfig defines Firebase configuration for Firestore and push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env keys are aligned with the YAML keys, so HEARTBEAT_FALLBACKINTERVAL
	// lands on heartbeat.fallbackInterval rather than heartbeat.fallbackinterval.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// ApplyDefaults fills every unset section with the engine defaults.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "tether.db"
	}
	if c.Storage.RetentionDays == 0 {
		c.Storage.RetentionDays = 20
	}
	if c.Storage.CleanupInterval == 0 {
		c.Storage.CleanupInterval = 24 * time.Hour
	}

	if c.Tracking == nil {
		c.Tracking = &TrackingConfig{}
	}
	c.Tracking.applyDefaults()

	if c.Heartbeat == nil {
		c.Heartbeat = &HeartbeatConfig{}
	}
	c.Heartbeat.applyDefaults()

	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	if c.Cache.DefaultTTL == 0 {
		c.Cache.DefaultTTL = 5 * time.Minute
	}

	if c.Sync == nil {
		c.Sync = &SyncConfig{}
	}
	c.Sync.applyDefaults()

	if c.Remote == nil {
		c.Remote = &RemoteConfig{}
	}
	c.Remote.applyDefaults()
}

func (t *TrackingConfig) applyDefaults() {
	if t.DwellThreshold == 0 {
		t.DwellThreshold = 5 * time.Minute
	}
	if t.GeofenceRadiusMeters == 0 {
		t.GeofenceRadiusMeters = 10
	}
	if t.ExitConfirmations == 0 {
		t.ExitConfirmations = 2
	}
	if t.BatteryDeltaThreshold == 0 {
		t.BatteryDeltaThreshold = 2
	}
}

func (h *HeartbeatConfig) applyDefaults() {
	if h.Interval == 0 {
		h.Interval = 30 * time.Minute
	}
	if h.FallbackInterval == 0 {
		h.FallbackInterval = 60 * time.Minute
	}
	if h.RetryBaseDelay == 0 {
		h.RetryBaseDelay = 30 * time.Second
	}
	if h.RetryMaxDelay == 0 {
		h.RetryMaxDelay = 120 * time.Second
	}
	if h.MaxConsecutiveFailures == 0 {
		h.MaxConsecutiveFailures = 3
	}
	if h.Timeout == 0 {
		h.Timeout = 10 * time.Second
	}
}

func (s *SyncConfig) applyDefaults() {
	if s.MaxRetries == 0 {
		s.MaxRetries = 3
	}
	if s.BaseDelay == 0 {
		s.BaseDelay = time.Second
	}
	if s.MaxDelay == 0 {
		s.MaxDelay = 30 * time.Second
	}
	if s.BackoffMultiplier == 0 {
		s.BackoffMultiplier = 2
	}
	if s.HealthyWindow == 0 {
		s.HealthyWindow = 5 * time.Minute
	}
	if s.MaxErrorCount == 0 {
		s.MaxErrorCount = 3
	}
}

func (r *RemoteConfig) applyDefaults() {
	if r.Provider == "" {
		r.Provider = "memory"
	}
	if r.UsersCollection == "" {
		r.UsersCollection = "users"
	}
	if r.Timeout == 0 {
		r.Timeout = 10 * time.Second
	}
	if r.Breaker.MaxRequests == 0 {
		r.Breaker.MaxRequests = 1
	}
	if r.Breaker.Interval == 0 {
		r.Breaker.Interval = time.Minute
	}
	if r.Breaker.Timeout == 0 {
		r.Breaker.Timeout = 30 * time.Second
	}
	if r.Breaker.ConsecutiveFailures == 0 {
		r.Breaker.ConsecutiveFailures = 5
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

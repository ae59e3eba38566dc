package entity

import "time"

// QueuedHeartbeat is a liveness ping stored locally after every send attempt failed.
type QueuedHeartbeat struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	BatteryLevel int       `json:"battery_level"`
	IsCharging   bool      `json:"is_charging"`
	HeartbeatAt  time.Time `json:"heartbeat_at"`
	Minimal      bool      `json:"minimal"` // Only the timestamp is meaningful
	Attempts     int       `json:"attempts"`
	CreatedAt    time.Time `json:"created_at"`
}

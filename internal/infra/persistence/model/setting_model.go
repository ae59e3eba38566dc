package model

import "time"

// AppSettingModel is the GORM-specific struct for the 'app_settings' key/value table.
type AppSettingModel struct {
	Key       string    `gorm:"type:text;primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AppSettingModel) TableName() string {
	return "app_settings"
}

// HeartbeatQueueModel is the GORM-specific struct for the 'heartbeat_queue' table.
type HeartbeatQueueModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       string    `gorm:"type:text;not null;index"`
	BatteryLevel int       `gorm:"not null"`
	IsCharging   bool      `gorm:"not null"`
	HeartbeatAt  time.Time `gorm:"not null"`
	Minimal      bool      `gorm:"not null"`
	Attempts     int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HeartbeatQueueModel) TableName() string {
	return "heartbeat_queue"
}

// All lists every model managed by AutoMigrate
func All() []any {
	return []any{
		&LocationRecordModel{},
		&TripModel{},
		&TripWaypointModel{},
		&AppSettingModel{},
		&HeartbeatQueueModel{},
	}
}

package model

import (
	"time"
)

// LocationRecordModel is the GORM-specific struct for the 'location_records' table.
// Each row is the projection of one ingested device state sample.
type LocationRecordModel struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement"`
	UserID             string     `gorm:"type:text;not null;index:idx_location_user_time,priority:1"`
	Latitude           float64    `gorm:"not null"`
	Longitude          float64    `gorm:"not null"`
	Address            *string    `gorm:"type:text"`
	Accuracy           *float64   `gorm:"type:real"`
	Speed              *float64   `gorm:"type:real"`
	BatteryLevel       int        `gorm:"not null"`
	IsCharging         bool       `gorm:"not null"`
	Motion             string     `gorm:"type:text;not null"`
	LocationEnabled    bool       `gorm:"not null"`
	SampleTime         time.Time  `gorm:"not null;index:idx_location_user_time,priority:2"`
	ArrivalTimestamp   time.Time  `gorm:"not null"`
	HeartbeatTimestamp *time.Time `gorm:"type:datetime"`
	GeofenceActive     bool       `gorm:"not null"`
	GeofenceLatitude   *float64   `gorm:"type:real"`
	GeofenceLongitude  *float64   `gorm:"type:real"`
	GeofenceRadius     *float64   `gorm:"type:real"`
	GeofenceEntryTime  *time.Time `gorm:"type:datetime"`
	IsStationary       bool       `gorm:"not null"`
	Synced             bool       `gorm:"not null;index"`
	SyncedAt           *time.Time `gorm:"type:datetime"`
	CreatedAt          time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationRecordModel) TableName() string {
	return "location_records"
}

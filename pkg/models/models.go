package models

import "time"

// SensorReading is one water quality measurement reported by a probe.
// Readings are append-only: never updated, never deleted.
type SensorReading struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Tds       float64   `json:"tds"`
	Ph        float64   `json:"ph"`
	Oxygen    float64   `json:"oxygen"`
	Timestamp time.Time `json:"timestamp"`
}

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // bcrypt hash, never plaintext
}

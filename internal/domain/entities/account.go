package entities

import "time"

// Account is the peripheral user record. Passwords are stored as given; the
// product has no credential hardening requirements beyond an equality check.
type Account struct {
	Email           string `gorm:"type:varchar(255);primaryKey"`
	Password        string `gorm:"type:varchar(255);not null"`
	Plan            string `gorm:"type:varchar(20);not null"`
	VideosProcessed int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

type Admin struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
	Status       string `gorm:"default:active;not null"` // active/disabled
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TournamentRecord is one published result.
type TournamentRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UploadID     string `gorm:"size:36;index"`
	TournamentID string `gorm:"size:64;index"`
	Filename     string `gorm:"size:255"`
	TotalPlayers int
	ResultJSON   datatypes.JSON
	CreatedAt    time.Time
}

// PointsEntry is a manual leaderboard adjustment.
type PointsEntry struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Player       string `gorm:"size:128;index;not null"`
	Points       int64
	TournamentID string `gorm:"size:64"`
	Reason       string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package dao

import "time"

type Team struct {
	ID           uint   `gorm:"primaryKey"`
	TournamentID uint   `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	MemberCount  int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TeamSecret holds the bcrypt hash of a team's join password, 1:1 with the
// team. It is never selected by listing queries.
type TeamSecret struct {
	ID           uint   `gorm:"primaryKey"`
	TeamID       uint   `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Tournament struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	CourseName string    `gorm:"not null"`
	Date       time.Time `gorm:"not null;index"`

	Street    string `gorm:"not null"`
	City      string `gorm:"not null"`
	State     string `gorm:"size:2;not null;index"`
	Zip       string `gorm:"not null"`
	Latitude  float64
	Longitude float64

	Description  string `gorm:"not null"`
	ContactEmail string `gorm:"not null"`
	ExternalURL  string

	CreatorID uint `gorm:"not null;index"`
	Creator   User `gorm:"foreignKey:CreatorID"`

	MaxTeams          int `gorm:"not null;default:18"`
	MaxPlayersPerTeam int `gorm:"not null;default:4"`

	Teams []Team `gorm:"foreignKey:TournamentID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TournamentDAO struct {
	db *gorm.DB
}

func NewTournamentDAO(db *gorm.DB) *TournamentDAO {
	return &TournamentDAO{
		db: db,
	}
}

// List is the cheap read-only listing query behind the browse page. The
// rows it returns are UI snapshots only and never feed a commit decision.
func (d *TournamentDAO) List(ctx context.Context, state string, from, to time.Time) ([]Tournament, error) {
	query := d.db.WithContext(ctx).Order("date asc")

	if state != "" {
		query = query.Where("state = ?", state)
	}
	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	var tournaments []Tournament
	if result := query.Find(&tournaments); result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

func (d *TournamentDAO) GetByID(ctx context.Context, id uint) (Tournament, error) {
	var tournament Tournament

	result := d.db.WithContext(ctx).Preload("Teams").First(&tournament, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tournament{}, ErrTournamentNotFound
		}

		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) ListByCreator(ctx context.Context, creatorID uint) ([]Tournament, error) {
	var tournaments []Tournament

	result := d.db.WithContext(ctx).Where("creator_id = ?", creatorID).Order("date asc").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

func (d *TournamentDAO) Update(ctx context.Context, tournament Tournament) (Tournament, error) {
	result := d.db.WithContext(ctx).Save(&tournament)
	if result.Error != nil {
		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) ListTeams(ctx context.Context, tournamentID uint) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("created_at asc").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamFull              = errors.New("team is full")
	ErrTeamCapacityExceeded  = errors.New("tournament has reached its maximum number of teams")
	ErrDuplicateRegistration = errors.New("this email is already registered for this tournament")
	ErrInvalidTeamSelection  = errors.New("select an existing team, create a new one, or register without a team")
	ErrWrongTeamPassword     = errors.New("incorrect team password")
)

type Registration struct {
	ID           uint   `gorm:"primaryKey"`
	TournamentID uint   `gorm:"not null;uniqueIndex:idx_registrations_tournament_email"`
	Email        string `gorm:"not null;uniqueIndex:idx_registrations_tournament_email"` // always lower-cased
	Name         string `gorm:"not null"`
	TeamID       *uint
	TeamName     string `gorm:"not null"`
	CreatedAt    time.Time
}

// RegistrationTx is the transactional read-then-write capability scoped to
// one tournament. It is deliberately separate from the listing queries on
// TournamentDAO: commit decisions must only ever be based on rows re-read
// through this interface, never on a snapshot fetched before the
// transaction opened.
type RegistrationTx interface {
	// Tournament re-reads and locks the tournament row, serializing all
	// capacity decisions under it.
	Tournament() (Tournament, error)
	GetRegistration(email string) (Registration, bool, error)
	CountTeams() (int64, error)
	GetTeam(teamID uint) (Team, error)
	GetTeamSecret(teamID uint) (TeamSecret, error)
	CreateTeam(team *Team) error
	CreateTeamSecret(secret *TeamSecret) error
	SetTeamMemberCount(teamID uint, memberCount int) error
	CreateRegistration(reg *Registration) error
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// InTx runs fn against a RegistrationTx inside a serializable transaction
// with bounded conflict retries. All writes commit atomically or not at all.
func (d *RegistrationDAO) InTx(ctx context.Context, tournamentID uint, fn func(tx RegistrationTx) error) error {
	return runSerializable(ctx, d.db, func(tx *gorm.DB) error {
		return fn(&registrationTx{tx: tx, tournamentID: tournamentID})
	})
}

type registrationTx struct {
	tx           *gorm.DB
	tournamentID uint
}

func (t *registrationTx) Tournament() (Tournament, error) {
	var tournament Tournament

	result := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tournament, t.tournamentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tournament{}, ErrTournamentNotFound
		}

		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (t *registrationTx) GetRegistration(email string) (Registration, bool, error) {
	var reg Registration

	result := t.tx.First(&reg, "tournament_id = ? AND email = ?", t.tournamentID, email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, false, nil
		}

		return Registration{}, false, result.Error
	}

	return reg, true, nil
}

func (t *registrationTx) CountTeams() (int64, error) {
	var count int64

	result := t.tx.Model(&Team{}).Where("tournament_id = ?", t.tournamentID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (t *registrationTx) GetTeam(teamID uint) (Team, error) {
	var team Team

	result := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&team, "id = ? AND tournament_id = ?", teamID, t.tournamentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (t *registrationTx) GetTeamSecret(teamID uint) (TeamSecret, error) {
	var secret TeamSecret

	result := t.tx.First(&secret, "team_id = ?", teamID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TeamSecret{}, ErrTeamNotFound
		}

		return TeamSecret{}, result.Error
	}

	return secret, nil
}

func (t *registrationTx) CreateTeam(team *Team) error {
	team.TournamentID = t.tournamentID

	return t.tx.Create(team).Error
}

func (t *registrationTx) CreateTeamSecret(secret *TeamSecret) error {
	return t.tx.Create(secret).Error
}

func (t *registrationTx) SetTeamMemberCount(teamID uint, memberCount int) error {
	result := t.tx.Model(&Team{}).
		Where("id = ? AND tournament_id = ?", teamID, t.tournamentID).
		Update("member_count", memberCount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

func (t *registrationTx) CreateRegistration(reg *Registration) error {
	reg.TournamentID = t.tournamentID

	result := t.tx.Create(reg)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicateRegistration
		}

		return result.Error
	}

	return nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrQuotaExceeded is returned when a creator hits the monthly tournament
// creation cap.
var ErrQuotaExceeded = errors.New("monthly tournament creation limit reached")

type MonthlyUsage struct {
	ID                 uint   `gorm:"primaryKey"`
	CreatorEmail       string `gorm:"not null;uniqueIndex:idx_monthly_usages_creator_month"`
	YearMonth          string `gorm:"size:7;not null;uniqueIndex:idx_monthly_usages_creator_month"` // "2006-01"
	TournamentsCreated int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// QuotaTx mirrors RegistrationTx for the monthly creation quota: the usage
// counter is re-read inside the transaction and incremented in the same
// atomic unit as the tournament insert.
type QuotaTx interface {
	GetUsage(creatorEmail, yearMonth string) (MonthlyUsage, bool, error)
	PutUsage(usage *MonthlyUsage) error
	CreateTournament(tournament *Tournament) error
}

type UsageDAO struct {
	db *gorm.DB
}

func NewUsageDAO(db *gorm.DB) *UsageDAO {
	return &UsageDAO{
		db: db,
	}
}

func (d *UsageDAO) InTx(ctx context.Context, fn func(tx QuotaTx) error) error {
	return runSerializable(ctx, d.db, func(tx *gorm.DB) error {
		return fn(&quotaTx{tx: tx})
	})
}

type quotaTx struct {
	tx *gorm.DB
}

func (t *quotaTx) GetUsage(creatorEmail, yearMonth string) (MonthlyUsage, bool, error) {
	var usage MonthlyUsage

	result := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&usage, "creator_email = ? AND year_month = ?", creatorEmail, yearMonth)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return MonthlyUsage{}, false, nil
		}

		return MonthlyUsage{}, false, result.Error
	}

	return usage, true, nil
}

func (t *quotaTx) PutUsage(usage *MonthlyUsage) error {
	result := t.tx.Save(usage)
	if result.Error != nil {
		// Two first-of-the-month creations can race on the insert; the loser
		// surfaces as the generic conflict failure.
		if isUniqueViolation(result.Error) {
			return ErrTransactionConflict
		}

		return result.Error
	}

	return nil
}

func (t *quotaTx) CreateTournament(tournament *Tournament) error {
	return t.tx.Create(tournament).Error
}

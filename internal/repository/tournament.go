package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/repository/dao"
)

var ErrQuotaExceeded = dao.ErrQuotaExceeded

// monthlyCreationLimit caps tournaments per creator per calendar month.
const monthlyCreationLimit = 5

type TournamentDAO interface {
	List(ctx context.Context, state string, from, to time.Time) ([]dao.Tournament, error)
	GetByID(ctx context.Context, id uint) (dao.Tournament, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]dao.Tournament, error)
	Update(ctx context.Context, tournament dao.Tournament) (dao.Tournament, error)
	ListTeams(ctx context.Context, tournamentID uint) ([]dao.Team, error)
}

type UsageDAO interface {
	InTx(ctx context.Context, fn func(tx dao.QuotaTx) error) error
}

type TournamentRepository struct {
	dao   TournamentDAO
	usage UsageDAO
}

func NewTournamentRepository(dao TournamentDAO, usage UsageDAO) *TournamentRepository {
	return &TournamentRepository{
		dao:   dao,
		usage: usage,
	}
}

// CreateWithQuota creates the tournament and bumps the creator's monthly
// usage counter in one atomic unit. The counter is re-read inside the
// transaction; bypassQuota skips the cap check but still records usage.
func (r *TournamentRepository) CreateWithQuota(ctx context.Context, tournament domain.Tournament, creatorEmail string, bypassQuota bool) (domain.Tournament, error) {
	yearMonth := time.Now().UTC().Format("2006-01")

	var created dao.Tournament
	err := r.usage.InTx(ctx, func(tx dao.QuotaTx) error {
		usage, found, err := tx.GetUsage(creatorEmail, yearMonth)
		if err != nil {
			return fmt.Errorf("tx.GetUsage -> %w", err)
		}
		if !found {
			usage = dao.MonthlyUsage{
				CreatorEmail: creatorEmail,
				YearMonth:    yearMonth,
			}
		}

		if !bypassQuota && usage.TournamentsCreated >= monthlyCreationLimit {
			return dao.ErrQuotaExceeded
		}

		usage.TournamentsCreated++
		if err = tx.PutUsage(&usage); err != nil {
			return fmt.Errorf("tx.PutUsage -> %w", err)
		}

		row := r.domainToDao(tournament)
		if err = tx.CreateTournament(&row); err != nil {
			return fmt.Errorf("tx.CreateTournament -> %w", err)
		}

		created = row

		return nil
	})
	if err != nil {
		return domain.Tournament{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *TournamentRepository) List(ctx context.Context, filter domain.TournamentFilter) ([]domain.Tournament, error) {
	tournaments, err := r.dao.List(ctx, filter.State, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(tournaments), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id uint) (domain.Tournament, error) {
	tournament, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, err
	}

	return r.daoToDomain(tournament), nil
}

func (r *TournamentRepository) ListByCreator(ctx context.Context, creatorID uint) ([]domain.Tournament, error) {
	tournaments, err := r.dao.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByCreator -> %w", err)
	}

	return r.daosToDomain(tournaments), nil
}

func (r *TournamentRepository) Update(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(tournament))
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TournamentRepository) ListTeams(ctx context.Context, tournamentID uint) ([]domain.Team, error) {
	teams, err := r.dao.ListTeams(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTeams -> %w", err)
	}

	return r.teamsDaoToDomain(teams), nil
}

func (r *TournamentRepository) domainToDao(t domain.Tournament) dao.Tournament {
	return dao.Tournament{
		ID:                t.ID,
		Name:              t.Name,
		CourseName:        t.CourseName,
		Date:              t.Date,
		Street:            t.Location.Street,
		City:              t.Location.City,
		State:             t.Location.State,
		Zip:               t.Location.Zip,
		Latitude:          t.Location.Latitude,
		Longitude:         t.Location.Longitude,
		Description:       t.Description,
		ContactEmail:      t.ContactEmail,
		ExternalURL:       t.ExternalURL,
		CreatorID:         t.CreatorID,
		MaxTeams:          t.MaxTeams,
		MaxPlayersPerTeam: t.MaxPlayersPerTeam,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (r *TournamentRepository) daoToDomain(t dao.Tournament) domain.Tournament {
	return domain.Tournament{
		ID:         t.ID,
		Name:       t.Name,
		CourseName: t.CourseName,
		Date:       t.Date,
		Location: domain.Location{
			Street:    t.Street,
			City:      t.City,
			State:     t.State,
			Zip:       t.Zip,
			Latitude:  t.Latitude,
			Longitude: t.Longitude,
		},
		Description:       t.Description,
		ContactEmail:      t.ContactEmail,
		ExternalURL:       t.ExternalURL,
		CreatorID:         t.CreatorID,
		MaxTeams:          t.MaxTeams,
		MaxPlayersPerTeam: t.MaxPlayersPerTeam,
		Teams:             r.teamsDaoToDomain(t.Teams),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (r *TournamentRepository) daosToDomain(tournaments []dao.Tournament) []domain.Tournament {
	result := make([]domain.Tournament, len(tournaments))
	for i, t := range tournaments {
		result[i] = r.daoToDomain(t)
	}

	return result
}

func (r *TournamentRepository) teamsDaoToDomain(teams []dao.Team) []domain.Team {
	if len(teams) == 0 {
		return nil
	}

	result := make([]domain.Team, len(teams))
	for i, team := range teams {
		result[i] = domain.Team{
			ID:           team.ID,
			TournamentID: team.TournamentID,
			Name:         team.Name,
			MemberCount:  team.MemberCount,
			CreatedAt:    team.CreatedAt,
		}
	}

	return result
}

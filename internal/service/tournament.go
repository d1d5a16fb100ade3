package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/repository"
)

var (
	ErrTournamentNotFound   = repository.ErrTournamentNotFound
	ErrQuotaExceeded        = repository.ErrQuotaExceeded
	ErrNotTournamentCreator = errors.New("only the tournament creator can modify it")
	ErrTransactionConflict  = repository.ErrTransactionConflict
)

type TournamentRepository interface {
	CreateWithQuota(ctx context.Context, tournament domain.Tournament, creatorEmail string, bypassQuota bool) (domain.Tournament, error)
	List(ctx context.Context, filter domain.TournamentFilter) ([]domain.Tournament, error)
	GetByID(ctx context.Context, id uint) (domain.Tournament, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]domain.Tournament, error)
	Update(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	ListTeams(ctx context.Context, tournamentID uint) ([]domain.Team, error)
}

type TournamentService struct {
	repo TournamentRepository

	// adminEmail creates without the monthly cap.
	adminEmail string
}

func NewTournamentService(repo TournamentRepository, adminEmail string) *TournamentService {
	return &TournamentService{
		repo:       repo,
		adminEmail: adminEmail,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, tournament domain.Tournament, creator domain.User) (domain.Tournament, error) {
	tournament.CreatorID = creator.ID

	bypass := s.adminEmail != "" && strings.EqualFold(creator.Email, s.adminEmail)
	created, err := s.repo.CreateWithQuota(ctx, tournament, strings.ToLower(creator.Email), bypass)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrTransactionConflict) {
			return domain.Tournament{}, err
		}

		return domain.Tournament{}, fmt.Errorf("s.repo.CreateWithQuota -> %w", err)
	}

	return created, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context, filter domain.TournamentFilter) ([]domain.Tournament, error) {
	// Without an explicit date range the listing shows upcoming
	// tournaments only.
	if filter.From.IsZero() && filter.To.IsZero() {
		now := time.Now().UTC()
		filter.From = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	tournaments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return tournaments, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id uint) (domain.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return domain.Tournament{}, ErrTournamentNotFound
		}

		return domain.Tournament{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return tournament, nil
}

func (s *TournamentService) ListMyTournaments(ctx context.Context, creatorID uint) ([]domain.Tournament, error) {
	tournaments, err := s.repo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByCreator -> %w", err)
	}

	return tournaments, nil
}

// UpdateTournament replaces the mutable fields of an existing tournament.
// Only the creator may update; capacity limits keep their stored values when
// the update carries zeros.
func (s *TournamentService) UpdateTournament(ctx context.Context, tournament domain.Tournament, userID uint) (domain.Tournament, error) {
	existing, err := s.GetTournament(ctx, tournament.ID)
	if err != nil {
		return domain.Tournament{}, err
	}

	if existing.CreatorID != userID {
		return domain.Tournament{}, ErrNotTournamentCreator
	}

	existing.Name = tournament.Name
	existing.CourseName = tournament.CourseName
	existing.Date = tournament.Date
	existing.Location = tournament.Location
	existing.Description = tournament.Description
	existing.ContactEmail = tournament.ContactEmail
	existing.ExternalURL = tournament.ExternalURL
	if tournament.MaxTeams > 0 {
		existing.MaxTeams = tournament.MaxTeams
	}
	if tournament.MaxPlayersPerTeam > 0 {
		existing.MaxPlayersPerTeam = tournament.MaxPlayersPerTeam
	}
	existing.Teams = nil

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TournamentService) ListTeams(ctx context.Context, tournamentID uint) ([]domain.Team, error) {
	if _, err := s.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	teams, err := s.repo.ListTeams(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTeams -> %w", err)
	}

	return teams, nil
}

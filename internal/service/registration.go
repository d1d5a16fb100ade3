package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/repository"
)

var (
	ErrTeamNotFound          = repository.ErrTeamNotFound
	ErrTeamFull              = repository.ErrTeamFull
	ErrTeamCapacityExceeded  = repository.ErrTeamCapacityExceeded
	ErrDuplicateRegistration = repository.ErrDuplicateRegistration
	ErrInvalidTeamSelection  = repository.ErrInvalidTeamSelection
	ErrWrongTeamPassword     = repository.ErrWrongTeamPassword
)

// registrationErrs are the named failure kinds of the registration
// transaction; they pass through unwrapped so handlers can match them.
var registrationErrs = []error{
	repository.ErrTournamentNotFound,
	repository.ErrTeamNotFound,
	repository.ErrTeamFull,
	repository.ErrTeamCapacityExceeded,
	repository.ErrDuplicateRegistration,
	repository.ErrInvalidTeamSelection,
	repository.ErrWrongTeamPassword,
	repository.ErrTransactionConflict,
}

type RegistrationRepository interface {
	Register(ctx context.Context, tournamentID uint, reg domain.Registration, choice domain.TeamChoice) (domain.Registration, error)
}

type RegistrationService struct {
	repo RegistrationRepository
}

func NewRegistrationService(repo RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		repo: repo,
	}
}

// SubmitRegistration runs the registration transaction and surfaces one of
// the named failure kinds, or the created registration.
func (s *RegistrationService) SubmitRegistration(ctx context.Context, tournamentID uint, reg domain.Registration, choice domain.TeamChoice) (domain.Registration, error) {
	created, err := s.repo.Register(ctx, tournamentID, reg, choice)
	if err != nil {
		for _, known := range registrationErrs {
			if errors.Is(err, known) {
				return domain.Registration{}, known
			}
		}

		return domain.Registration{}, fmt.Errorf("s.repo.Register -> %w", err)
	}

	return created, nil
}

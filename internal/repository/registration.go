package repository

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/repository/dao"
)

var (
	ErrTournamentNotFound    = dao.ErrTournamentNotFound
	ErrTeamNotFound          = dao.ErrTeamNotFound
	ErrTeamFull              = dao.ErrTeamFull
	ErrTeamCapacityExceeded  = dao.ErrTeamCapacityExceeded
	ErrDuplicateRegistration = dao.ErrDuplicateRegistration
	ErrInvalidTeamSelection  = dao.ErrInvalidTeamSelection
	ErrWrongTeamPassword     = dao.ErrWrongTeamPassword
	ErrTransactionConflict   = dao.ErrTransactionConflict
)

// noTeamName is the team-name snapshot stored for unaffiliated registrations.
const noTeamName = "Individual (No Team)"

type RegistrationDAO interface {
	InTx(ctx context.Context, tournamentID uint, fn func(tx dao.RegistrationTx) error) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

// Register applies one registration atomically against the tournament's
// team/registration/secret aggregate. Every check runs against rows re-read
// inside the transaction; the teams snapshot shown to the registrant while
// filling the form plays no part in the commit decision.
func (r *RegistrationRepository) Register(ctx context.Context, tournamentID uint, reg domain.Registration, choice domain.TeamChoice) (domain.Registration, error) {
	// The lower-cased email is the uniqueness key within the tournament.
	email := strings.ToLower(reg.Email)

	// Hash up front so the bcrypt cost is not paid while holding row locks.
	var passwordHash string
	if choice.NewTeamName != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(choice.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.Registration{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}
		passwordHash = string(hash)
	}

	var created dao.Registration
	err := r.dao.InTx(ctx, tournamentID, func(tx dao.RegistrationTx) error {
		tournament, err := tx.Tournament()
		if err != nil {
			return err
		}

		if _, exists, err := tx.GetRegistration(email); err != nil {
			return fmt.Errorf("tx.GetRegistration -> %w", err)
		} else if exists {
			return dao.ErrDuplicateRegistration
		}

		var teamID *uint
		teamName := noTeamName

		switch {
		case choice.NewTeamName != "":
			count, err := tx.CountTeams()
			if err != nil {
				return fmt.Errorf("tx.CountTeams -> %w", err)
			}
			if count >= int64(tournament.MaxTeams) {
				return dao.ErrTeamCapacityExceeded
			}

			team := dao.Team{
				Name:        choice.NewTeamName,
				MemberCount: 1,
			}
			if err = tx.CreateTeam(&team); err != nil {
				return fmt.Errorf("tx.CreateTeam -> %w", err)
			}
			if err = tx.CreateTeamSecret(&dao.TeamSecret{
				TeamID:       team.ID,
				PasswordHash: passwordHash,
			}); err != nil {
				return fmt.Errorf("tx.CreateTeamSecret -> %w", err)
			}

			teamID = &team.ID
			teamName = team.Name

		case choice.JoinTeamID != 0:
			team, err := tx.GetTeam(choice.JoinTeamID)
			if err != nil {
				return err
			}
			if team.MemberCount >= tournament.MaxPlayersPerTeam {
				return dao.ErrTeamFull
			}

			secret, err := tx.GetTeamSecret(team.ID)
			if err != nil {
				return fmt.Errorf("tx.GetTeamSecret -> %w", err)
			}
			if bcrypt.CompareHashAndPassword([]byte(secret.PasswordHash), []byte(choice.Password)) != nil {
				return dao.ErrWrongTeamPassword
			}

			if err = tx.SetTeamMemberCount(team.ID, team.MemberCount+1); err != nil {
				return fmt.Errorf("tx.SetTeamMemberCount -> %w", err)
			}

			teamID = &team.ID
			teamName = team.Name

		case choice.NoTeam:
			// Unaffiliated registration, nothing to reserve.

		default:
			return dao.ErrInvalidTeamSelection
		}

		row := dao.Registration{
			Email:    email,
			Name:     reg.Name,
			TeamID:   teamID,
			TeamName: teamName,
		}
		if err = tx.CreateRegistration(&row); err != nil {
			return err
		}

		created = row

		return nil
	})
	if err != nil {
		return domain.Registration{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:           reg.ID,
		TournamentID: reg.TournamentID,
		Name:         reg.Name,
		Email:        reg.Email,
		TeamID:       reg.TeamID,
		TeamName:     reg.TeamName,
		CreatedAt:    reg.CreatedAt,
	}
}

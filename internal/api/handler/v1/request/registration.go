package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	zipRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	errAmbiguousTeamChoice  = errors.New("choose exactly one of joining a team, creating a team, or registering without a team")
	errTeamPasswordTooShort = errors.New("team password must be at least 4 characters long")
)

type SubmitRegistrationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	TeamID       uint   `json:"team_id"`
	NewTeamName  string `json:"new_team_name"`
	NoTeam       bool   `json:"no_team"`
	TeamPassword string `json:"team_password"`
}

func (req *SubmitRegistrationRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.NewTeamName, validation.Length(2, 50)),
	)
	if err != nil {
		return err
	}

	choices := 0
	if req.TeamID != 0 {
		choices++
	}
	if req.NewTeamName != "" {
		choices++
	}
	if req.NoTeam {
		choices++
	}
	if choices != 1 {
		return errAmbiguousTeamChoice
	}

	if !req.NoTeam && len(req.TeamPassword) < 4 {
		return errTeamPasswordTooShort
	}

	return nil
}

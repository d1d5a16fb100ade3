package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylist/fairway-api/internal/api/handler/v1/request"
	"github.com/fairwaylist/fairway-api/internal/api/handler/v1/response"
	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/service"
)

type RegistrationService interface {
	SubmitRegistration(ctx context.Context, tournamentID uint, reg domain.Registration, choice domain.TeamChoice) (domain.Registration, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleSubmitRegistration godoc
// @Summary      Register for a tournament
// @Description  Registers a player into a tournament, atomically joining a
// @Description  team, creating a new team, or enrolling without one.
// @Tags         registrations
// @Produce      json
// @Param        tournamentID   path      int                                true "Tournament ID"
// @Param        request        body      request.SubmitRegistrationRequest  true "request body"
// @Success      201            {object}  domain.Registration
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /tournaments/{tournamentID}/registrations [post]
func (h *RegistrationHandler) HandleSubmitRegistration(ctx *gin.Context) {
	tournamentID, ok := parseTournamentID(ctx)
	if !ok {
		return
	}

	var req request.SubmitRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.SubmitRegistration(ctx.Request.Context(), tournamentID,
		domain.Registration{
			Name:  req.Name,
			Email: req.Email,
		},
		domain.TeamChoice{
			JoinTeamID:  req.TeamID,
			NewTeamName: req.NewTeamName,
			NoTeam:      req.NoTeam,
			Password:    req.TeamPassword,
		},
	)
	if err != nil {
		h.renderRegistrationErr(ctx, tournamentID, req.TeamID, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// renderRegistrationErr maps the named failure kinds of the registration
// transaction onto HTTP statuses.
func (h *RegistrationHandler) renderRegistrationErr(ctx *gin.Context, tournamentID, teamID uint, err error) {
	switch {
	case errors.Is(err, service.ErrTournamentNotFound):
		response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
	case errors.Is(err, service.ErrTeamNotFound):
		response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))
	case errors.Is(err, service.ErrInvalidTeamSelection):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrWrongTeamPassword):
		response.RenderErr(ctx, response.ErrWrongCredentials(err))
	case errors.Is(err, service.ErrDuplicateRegistration),
		errors.Is(err, service.ErrTeamFull),
		errors.Is(err, service.ErrTeamCapacityExceeded),
		errors.Is(err, service.ErrTransactionConflict):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		err = fmt.Errorf("v1.HandleSubmitRegistration -> h.svc.SubmitRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

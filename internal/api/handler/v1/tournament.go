package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylist/fairway-api/internal/api/handler/v1/request"
	"github.com/fairwaylist/fairway-api/internal/api/handler/v1/response"
	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/service"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, tournament domain.Tournament, creator domain.User) (domain.Tournament, error)
	ListTournaments(ctx context.Context, filter domain.TournamentFilter) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id uint) (domain.Tournament, error)
	ListMyTournaments(ctx context.Context, creatorID uint) ([]domain.Tournament, error)
	UpdateTournament(ctx context.Context, tournament domain.Tournament, userID uint) (domain.Tournament, error)
	ListTeams(ctx context.Context, tournamentID uint) ([]domain.Team, error)
}

type TournamentHandler struct {
	svc  TournamentService
	uSvc UserService
}

func NewTournamentHandler(svc TournamentService, uSvc UserService) *TournamentHandler {
	return &TournamentHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListTournaments godoc
// @Summary      List tournaments
// @Tags         tournaments
// @Produce      json
// @Param        state   query      string  false  "Two-letter state filter"
// @Param        from    query      string  false  "Earliest date (2006-01-02)"
// @Param        to      query      string  false  "Latest date (2006-01-02)"
// @Success      200     {object}   []domain.Tournament
// @Failure      400     {object}   response.Err
// @Failure      500     {object}   response.Err
// @Router       /tournaments [get]
func (h *TournamentHandler) HandleListTournaments(ctx *gin.Context) {
	var query request.ListTournamentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournaments, err := h.svc.ListTournaments(ctx.Request.Context(), domain.TournamentFilter{
		State: query.State,
		From:  query.FromValue(),
		To:    query.ToValue(),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListTournaments -> h.svc.ListTournaments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournaments)
}

// HandleGetTournament godoc
// @Summary      Get a tournament with its teams
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID   path       int  true  "Tournament ID"
// @Success      200            {object}   domain.Tournament
// @Failure      400            {object}   response.Err
// @Failure      404            {object}   response.Err
// @Failure      500            {object}   response.Err
// @Router       /tournaments/{tournamentID} [get]
func (h *TournamentHandler) HandleGetTournament(ctx *gin.Context) {
	tournamentID, ok := parseTournamentID(ctx)
	if !ok {
		return
	}

	tournament, err := h.svc.GetTournament(ctx.Request.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetTournament -> h.svc.GetTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournament)
}

// HandleListTeams godoc
// @Summary      List the teams of a tournament
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID   path       int  true  "Tournament ID"
// @Success      200            {object}   []domain.Team
// @Failure      400            {object}   response.Err
// @Failure      404            {object}   response.Err
// @Failure      500            {object}   response.Err
// @Router       /tournaments/{tournamentID}/teams [get]
func (h *TournamentHandler) HandleListTeams(ctx *gin.Context) {
	tournamentID, ok := parseTournamentID(ctx)
	if !ok {
		return
	}

	teams, err := h.svc.ListTeams(ctx.Request.Context(), tournamentID)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleListTeams -> h.svc.ListTeams -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleCreateTournament godoc
// @Summary      Create a tournament
// @Tags         tournaments
// @Produce      json
// @Param        request   body      request.CreateTournamentRequest true "request body"
// @Success      201      {object}   domain.Tournament
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      429      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /tournaments [post]
// @Security BearerAuth
func (h *TournamentHandler) HandleCreateTournament(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateTournamentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateTournament(ctx.Request.Context(), tournamentFromRequest(&req), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuotaExceeded):
			response.RenderErr(ctx, response.ErrTooManyRequests(service.ErrQuotaExceeded))
		case errors.Is(err, service.ErrTransactionConflict):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTransactionConflict))
		default:
			err = fmt.Errorf("v1.HandleCreateTournament -> h.svc.CreateTournament -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTournament godoc
// @Summary      Update a tournament
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID   path      int                              true "Tournament ID"
// @Param        request        body      request.UpdateTournamentRequest  true "request body"
// @Success      200            {object}  domain.Tournament
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /tournaments/{tournamentID} [put]
// @Security BearerAuth
func (h *TournamentHandler) HandleUpdateTournament(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tournamentID, ok := parseTournamentID(ctx)
	if !ok {
		return
	}

	var req request.UpdateTournamentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament := tournamentFromRequest(&req.CreateTournamentRequest)
	tournament.ID = tournamentID

	updated, err := h.svc.UpdateTournament(ctx.Request.Context(), tournament, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
		case errors.Is(err, service.ErrNotTournamentCreator):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotTournamentCreator))
		default:
			err = fmt.Errorf("v1.HandleUpdateTournament -> h.svc.UpdateTournament -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleListMyTournaments godoc
// @Summary      List the tournaments created by the authenticated user
// @Tags         tournaments
// @Produce      json
// @Success      200   {object}   []domain.Tournament
// @Failure      401   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /my/tournaments [get]
// @Security BearerAuth
func (h *TournamentHandler) HandleListMyTournaments(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tournaments, err := h.svc.ListMyTournaments(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyTournaments -> h.svc.ListMyTournaments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournaments)
}

func parseTournamentID(ctx *gin.Context) (uint, bool) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournamentID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid tournament ID")))
		return 0, false
	}

	return uint(tournamentID), true
}

func tournamentFromRequest(req *request.CreateTournamentRequest) domain.Tournament {
	return domain.Tournament{
		Name:       req.Name,
		CourseName: req.CourseName,
		Date:       req.DateValue(),
		Location: domain.Location{
			Street:    req.Location.Street,
			City:      req.Location.City,
			State:     req.Location.State,
			Zip:       req.Location.Zip,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		},
		Description:       req.Description,
		ContactEmail:      req.ContactEmail,
		ExternalURL:       req.ExternalURL,
		MaxTeams:          req.MaxTeams,
		MaxPlayersPerTeam: req.MaxPlayersPerTeam,
	}
}

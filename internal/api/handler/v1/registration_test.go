package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/service"
)

type fakeRegistrationService struct {
	created domain.Registration
	err     error

	gotTournamentID uint
	gotChoice       domain.TeamChoice
}

func (f *fakeRegistrationService) SubmitRegistration(_ context.Context, tournamentID uint, _ domain.Registration, choice domain.TeamChoice) (domain.Registration, error) {
	f.gotTournamentID = tournamentID
	f.gotChoice = choice
	if f.err != nil {
		return domain.Registration{}, f.err
	}

	return f.created, nil
}

func newRegistrationTestRouter(svc RegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewRegistrationHandler(svc)
	router.POST("/api/v1/tournaments/:tournamentID/registrations", handler.HandleSubmitRegistration)

	return router
}

func postRegistration(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

const joinBody = `{"name":"Alice","email":"alice@example.com","team_id":3,"team_password":"pass"}`

func TestHandleSubmitRegistration_Created(t *testing.T) {
	teamID := uint(3)
	svc := &fakeRegistrationService{
		created: domain.Registration{
			ID:           1,
			TournamentID: 9,
			Name:         "Alice",
			Email:        "alice@example.com",
			TeamID:       &teamID,
			TeamName:     "The Mulligans",
		},
	}
	router := newRegistrationTestRouter(svc)

	resp := postRegistration(router, "/api/v1/tournaments/9/registrations", joinBody)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, uint(9), svc.gotTournamentID)
	assert.Equal(t, uint(3), svc.gotChoice.JoinTeamID)
	assert.Contains(t, resp.Body.String(), `"team_name":"The Mulligans"`)
}

func TestHandleSubmitRegistration_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"tournament not found", service.ErrTournamentNotFound, http.StatusNotFound},
		{"team not found", service.ErrTeamNotFound, http.StatusNotFound},
		{"duplicate registration", service.ErrDuplicateRegistration, http.StatusConflict},
		{"team full", service.ErrTeamFull, http.StatusConflict},
		{"team capacity exceeded", service.ErrTeamCapacityExceeded, http.StatusConflict},
		{"transaction conflict", service.ErrTransactionConflict, http.StatusConflict},
		{"wrong team password", service.ErrWrongTeamPassword, http.StatusUnauthorized},
		{"invalid team selection", service.ErrInvalidTeamSelection, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRegistrationTestRouter(&fakeRegistrationService{err: tt.svcErr})

			resp := postRegistration(router, "/api/v1/tournaments/9/registrations", joinBody)

			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestHandleSubmitRegistration_BadRequests(t *testing.T) {
	router := newRegistrationTestRouter(&fakeRegistrationService{})

	t.Run("invalid tournament ID", func(t *testing.T) {
		resp := postRegistration(router, "/api/v1/tournaments/abc/registrations", joinBody)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := postRegistration(router, "/api/v1/tournaments/9/registrations", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("ambiguous team choice", func(t *testing.T) {
		body := `{"name":"Alice","email":"alice@example.com","team_id":3,"no_team":true,"team_password":"pass"}`
		resp := postRegistration(router, "/api/v1/tournaments/9/registrations", body)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

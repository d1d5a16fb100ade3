package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateTournamentRequest() CreateTournamentRequest {
	return CreateTournamentRequest{
		Name:       "Spring Scramble",
		CourseName: "Pebble Creek GC",
		Date:       "2026-09-12",
		Location: Location{
			Street: "1 Fairway Dr",
			City:   "Boise",
			State:  "ID",
			Zip:    "83702",
		},
		Description:       "Annual four-person scramble.",
		ContactEmail:      "host@example.com",
		MaxTeams:          18,
		MaxPlayersPerTeam: 4,
	}
}

func TestCreateTournamentRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateTournamentRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("unsupported state", func(t *testing.T) {
		req := validCreateTournamentRequest()
		req.Location.State = "TX"
		assert.Error(t, req.Validate())
	})

	t.Run("bad zip", func(t *testing.T) {
		req := validCreateTournamentRequest()
		req.Location.Zip = "837"
		assert.Error(t, req.Validate())
	})

	t.Run("zip with plus four", func(t *testing.T) {
		req := validCreateTournamentRequest()
		req.Location.Zip = "83702-1234"
		assert.NoError(t, req.Validate())
	})

	t.Run("bad date", func(t *testing.T) {
		req := validCreateTournamentRequest()
		req.Date = "09/12/2026"
		assert.Error(t, req.Validate())
	})

	t.Run("capacity out of range", func(t *testing.T) {
		req := validCreateTournamentRequest()
		req.MaxTeams = 101
		assert.Error(t, req.Validate())

		req = validCreateTournamentRequest()
		req.MaxPlayersPerTeam = 0
		assert.Error(t, req.Validate())
	})

	t.Run("bad contact email", func(t *testing.T) {
		req := validCreateTournamentRequest()
		req.ContactEmail = "nope"
		assert.Error(t, req.Validate())
	})
}

func TestCreateTournamentRequest_DateValue(t *testing.T) {
	req := validCreateTournamentRequest()
	require.NoError(t, req.Validate())

	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), req.DateValue())
}

func TestListTournamentsQuery_Validate(t *testing.T) {
	t.Run("empty query is valid", func(t *testing.T) {
		q := ListTournamentsQuery{}
		assert.NoError(t, q.Validate())
		assert.True(t, q.FromValue().IsZero())
		assert.True(t, q.ToValue().IsZero())
	})

	t.Run("full query", func(t *testing.T) {
		q := ListTournamentsQuery{State: "CA", From: "2026-01-01", To: "2026-12-31"}
		require.NoError(t, q.Validate())
		assert.Equal(t, 2026, q.FromValue().Year())
	})

	t.Run("unsupported state", func(t *testing.T) {
		q := ListTournamentsQuery{State: "NY"}
		assert.Error(t, q.Validate())
	})

	t.Run("bad date", func(t *testing.T) {
		q := ListTournamentsQuery{From: "Jan 1"}
		assert.Error(t, q.Validate())
	})
}

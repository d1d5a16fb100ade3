package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylist/fairway-api/internal/domain"
	"github.com/fairwaylist/fairway-api/internal/repository"
)

type fakeTournamentRepo struct {
	tournaments map[uint]domain.Tournament
	nextID      uint

	lastCreatorEmail string
	lastBypass       bool
	lastFilter       domain.TournamentFilter
	createErr        error
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{
		tournaments: make(map[uint]domain.Tournament),
		nextID:      1,
	}
}

func (f *fakeTournamentRepo) CreateWithQuota(_ context.Context, tournament domain.Tournament, creatorEmail string, bypassQuota bool) (domain.Tournament, error) {
	f.lastCreatorEmail = creatorEmail
	f.lastBypass = bypassQuota
	if f.createErr != nil {
		return domain.Tournament{}, f.createErr
	}

	tournament.ID = f.nextID
	f.nextID++
	f.tournaments[tournament.ID] = tournament

	return tournament, nil
}

func (f *fakeTournamentRepo) List(_ context.Context, filter domain.TournamentFilter) ([]domain.Tournament, error) {
	f.lastFilter = filter

	result := make([]domain.Tournament, 0, len(f.tournaments))
	for _, t := range f.tournaments {
		result = append(result, t)
	}

	return result, nil
}

func (f *fakeTournamentRepo) GetByID(_ context.Context, id uint) (domain.Tournament, error) {
	tournament, ok := f.tournaments[id]
	if !ok {
		return domain.Tournament{}, repository.ErrTournamentNotFound
	}

	return tournament, nil
}

func (f *fakeTournamentRepo) ListByCreator(_ context.Context, creatorID uint) ([]domain.Tournament, error) {
	var result []domain.Tournament
	for _, t := range f.tournaments {
		if t.CreatorID == creatorID {
			result = append(result, t)
		}
	}

	return result, nil
}

func (f *fakeTournamentRepo) Update(_ context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	f.tournaments[tournament.ID] = tournament

	return tournament, nil
}

func (f *fakeTournamentRepo) ListTeams(_ context.Context, _ uint) ([]domain.Team, error) {
	return nil, nil
}

func TestTournamentService_CreateTournament(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo, "admin@example.com")

	created, err := svc.CreateTournament(context.Background(),
		domain.Tournament{Name: "Spring Open", MaxTeams: 18},
		domain.User{ID: 7, Email: "Host@Example.com"},
	)

	require.NoError(t, err)
	assert.Equal(t, uint(7), created.CreatorID)
	assert.Equal(t, "host@example.com", repo.lastCreatorEmail)
	assert.False(t, repo.lastBypass)
}

func TestTournamentService_CreateTournamentAdminBypass(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo, "admin@example.com")

	_, err := svc.CreateTournament(context.Background(),
		domain.Tournament{Name: "Admin Open"},
		domain.User{ID: 1, Email: "Admin@Example.COM"},
	)

	require.NoError(t, err)
	assert.True(t, repo.lastBypass)
}

func TestTournamentService_CreateTournamentQuotaExceeded(t *testing.T) {
	repo := newFakeTournamentRepo()
	repo.createErr = repository.ErrQuotaExceeded
	svc := NewTournamentService(repo, "")

	_, err := svc.CreateTournament(context.Background(),
		domain.Tournament{Name: "Too Many"},
		domain.User{ID: 2, Email: "busy@example.com"},
	)

	require.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestTournamentService_UpdateTournament(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo, "")

	created, err := svc.CreateTournament(context.Background(),
		domain.Tournament{Name: "Before", MaxTeams: 18, MaxPlayersPerTeam: 4},
		domain.User{ID: 7, Email: "host@example.com"},
	)
	require.NoError(t, err)

	t.Run("creator can update", func(t *testing.T) {
		updated, err := svc.UpdateTournament(context.Background(),
			domain.Tournament{ID: created.ID, Name: "After"}, 7)

		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		// Zero capacities in the update keep the stored values.
		assert.Equal(t, 18, updated.MaxTeams)
		assert.Equal(t, 4, updated.MaxPlayersPerTeam)
	})

	t.Run("non-creator is rejected", func(t *testing.T) {
		_, err := svc.UpdateTournament(context.Background(),
			domain.Tournament{ID: created.ID, Name: "Hijacked"}, 8)

		require.ErrorIs(t, err, ErrNotTournamentCreator)
	})

	t.Run("unknown tournament", func(t *testing.T) {
		_, err := svc.UpdateTournament(context.Background(),
			domain.Tournament{ID: 999, Name: "Ghost"}, 7)

		require.ErrorIs(t, err, ErrTournamentNotFound)
	})
}

func TestTournamentService_ListTournamentsDefaultsToUpcoming(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo, "")

	t.Run("no range defaults to today onward", func(t *testing.T) {
		_, err := svc.ListTournaments(context.Background(), domain.TournamentFilter{State: "CA"})

		require.NoError(t, err)
		assert.False(t, repo.lastFilter.From.IsZero())
		assert.Equal(t, "CA", repo.lastFilter.State)
	})

	t.Run("explicit range passes through", func(t *testing.T) {
		from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.ListTournaments(context.Background(), domain.TournamentFilter{From: from})

		require.NoError(t, err)
		assert.Equal(t, from, repo.lastFilter.From)
	})
}

func TestTournamentService_ListMyTournaments(t *testing.T) {
	repo := newFakeTournamentRepo()
	svc := NewTournamentService(repo, "")

	_, err := svc.CreateTournament(context.Background(),
		domain.Tournament{Name: "Mine"}, domain.User{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)
	_, err = svc.CreateTournament(context.Background(),
		domain.Tournament{Name: "Theirs"}, domain.User{ID: 2, Email: "c@d.com"})
	require.NoError(t, err)

	mine, err := svc.ListMyTournaments(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)
}

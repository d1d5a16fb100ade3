package domain

import "time"

// Registration is one registrant's enrollment in a tournament. Email is
// stored lower-cased and is unique within the tournament; TeamID is nil for
// unaffiliated registrations and TeamName keeps a display snapshot of the
// team name at registration time.
type Registration struct {
	ID           uint      `json:"id"`
	TournamentID uint      `json:"tournament_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	TeamID       *uint     `json:"team_id,omitempty"`
	TeamName     string    `json:"team_name"`
	CreatedAt    time.Time `json:"created_at"`
}

package domain

import "time"

type Location struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Tournament struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	CourseName        string    `json:"course_name"`
	Date              time.Time `json:"date"`
	Location          Location  `json:"location"`
	Description       string    `json:"description"`
	ContactEmail      string    `json:"contact_email"`
	ExternalURL       string    `json:"external_url,omitempty"`
	CreatorID         uint      `json:"creator_id"`
	MaxTeams          int       `json:"max_teams"`
	MaxPlayersPerTeam int       `json:"max_players_per_team"`
	Teams             []Team    `json:"teams,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TournamentFilter narrows the public listing. Zero values mean "no filter".
type TournamentFilter struct {
	State string
	From  time.Time
	To    time.Time
}

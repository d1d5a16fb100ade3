package domain

import "time"

type Team struct {
	ID           uint      `json:"id"`
	TournamentID uint      `json:"tournament_id"`
	Name         string    `json:"name"`
	MemberCount  int       `json:"member_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// TeamChoice is how a registrant resolves team membership: join an existing
// team, create a new one, or register unaffiliated. Exactly one of the three
// must be set; Password carries the join/creation password in the first two
// cases and is never persisted as-is.
type TeamChoice struct {
	JoinTeamID  uint
	NewTeamName string
	NoTeam      bool
	Password    string
}

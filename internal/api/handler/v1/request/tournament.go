package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const dateLayout = "2006-01-02"

// supportedStates is the set of regions the listing currently serves.
var supportedStates = []interface{}{"AZ", "CA", "CO", "ID", "NV", "OR", "UT", "WA"}

type Location struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateTournamentRequest struct {
	Name              string   `json:"name"`
	CourseName        string   `json:"course_name"`
	Date              string   `json:"date"` // "2006-01-02"
	Location          Location `json:"location"`
	Description       string   `json:"description"`
	ContactEmail      string   `json:"contact_email"`
	ExternalURL       string   `json:"external_url"`
	MaxTeams          int      `json:"max_teams"`
	MaxPlayersPerTeam int      `json:"max_players_per_team"`
}

func (req *CreateTournamentRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.CourseName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.Description, validation.Required, validation.Length(0, 2000)),
		validation.Field(&req.ContactEmail, validation.Required, is.Email),
		validation.Field(&req.ExternalURL, is.URL),
		validation.Field(&req.MaxTeams, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&req.MaxPlayersPerTeam, validation.Required, validation.Min(1), validation.Max(10)),
	)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(
		&req.Location,
		validation.Field(&req.Location.Street, validation.Required),
		validation.Field(&req.Location.City, validation.Required),
		validation.Field(&req.Location.State, validation.Required, validation.In(supportedStates...)),
		validation.Field(&req.Location.Zip, validation.Required, validation.Match(zipRegex)),
	)
}

// DateValue parses the validated date field.
func (req *CreateTournamentRequest) DateValue() time.Time {
	date, _ := time.Parse(dateLayout, req.Date)

	return date
}

type UpdateTournamentRequest struct {
	CreateTournamentRequest
}

type ListTournamentsQuery struct {
	State string `form:"state"`
	From  string `form:"from"`
	To    string `form:"to"`
}

func (q *ListTournamentsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.State, validation.In(supportedStates...)),
		validation.Field(&q.From, validation.Date(dateLayout)),
		validation.Field(&q.To, validation.Date(dateLayout)),
	)
}

func (q *ListTournamentsQuery) FromValue() time.Time {
	if q.From == "" {
		return time.Time{}
	}
	from, _ := time.Parse(dateLayout, q.From)

	return from
}

func (q *ListTournamentsQuery) ToValue() time.Time {
	if q.To == "" {
		return time.Time{}
	}
	to, _ := time.Parse(dateLayout, q.To)

	return to
}

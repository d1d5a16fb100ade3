package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRegistrationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitRegistrationRequest
		wantErr bool
	}{
		{
			name: "join a team",
			req: SubmitRegistrationRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				TeamID:       3,
				TeamPassword: "pass",
			},
		},
		{
			name: "create a team",
			req: SubmitRegistrationRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				NewTeamName:  "The Mulligans",
				TeamPassword: "pass",
			},
		},
		{
			name: "no team needs no password",
			req: SubmitRegistrationRequest{
				Name:   "Alice",
				Email:  "alice@example.com",
				NoTeam: true,
			},
		},
		{
			name: "no choice at all",
			req: SubmitRegistrationRequest{
				Name:  "Alice",
				Email: "alice@example.com",
			},
			wantErr: true,
		},
		{
			name: "two choices at once",
			req: SubmitRegistrationRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				TeamID:       3,
				NewTeamName:  "The Mulligans",
				TeamPassword: "pass",
			},
			wantErr: true,
		},
		{
			name: "join and no-team at once",
			req: SubmitRegistrationRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				TeamID:       3,
				NoTeam:       true,
				TeamPassword: "pass",
			},
			wantErr: true,
		},
		{
			name: "password too short",
			req: SubmitRegistrationRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				TeamID:       3,
				TeamPassword: "abc",
			},
			wantErr: true,
		},
		{
			name: "missing name",
			req: SubmitRegistrationRequest{
				Email:  "alice@example.com",
				NoTeam: true,
			},
			wantErr: true,
		},
		{
			name: "bad email",
			req: SubmitRegistrationRequest{
				Name:   "Alice",
				Email:  "not-an-email",
				NoTeam: true,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package user

import "errors"

// Roles a backend account can carry. The dashboard renders different
// screens per role; this layer never changes a role.
const (
	RoleParticipant = "participant"
	RoleJudge       = "judge"
	RoleAdmin       = "admin"
)

// User is the backend's account record as consumed by this layer.
// Authoritative storage is the backend; copies here are ephemeral.
type User struct {
	ID           string   `json:"_id"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	Mobile       string   `json:"mobile"`
	College      string   `json:"college"`
	CollegeOther string   `json:"collegeOther,omitempty"` // free-text when College is "other"
	State        string   `json:"state,omitempty"`
	Role         string   `json:"role"`
	Gender       string   `json:"gender"`
	StatementIDs []string `json:"problemStatements,omitempty"` // assigned problem-statement ids (judges)
}

// DisplayName returns the label shown in member lists and the invite widget.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// Validate checks the minimal shape this layer relies on.
// POST: returns nil if the record is renderable, error otherwise
func (u User) Validate() error {
	if u.ID == "" {
		return errors.New("user id cannot be empty")
	}
	if u.Email == "" && u.Username == "" {
		return errors.New("user must have an email or username")
	}
	return nil
}

// IsAdmin reports whether the user may see the admin dashboard.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsJudge reports whether the user may see judge screens.
func (u User) IsJudge() bool {
	return u.Role == RoleJudge
}

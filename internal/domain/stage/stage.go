package stage

import "time"

// Well-known stage names in competition order.
const (
	NameRegistration = "registration"
	NameSubmission   = "submission"
	NameQualifiers   = "qualifiers"
	NameFinals       = "finals"
	NameResults      = "results"
)

// Stage is a named, time-bounded phase of the competition.
type Stage struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	Active   bool      `json:"active"`
}

// InWindow reports whether now falls inside the stage's time window.
func (s Stage) InWindow(now time.Time) bool {
	return !now.Before(s.StartsAt) && !now.After(s.EndsAt)
}

// Progress is a team's pointer into the stage timeline.
// Disqualification is terminal and never written by this layer.
type Progress struct {
	TeamID       string `json:"team"`
	StageID      string `json:"stage"`
	Completed    bool   `json:"completed"`
	Disqualified bool   `json:"disqualified"`
}

package team

import (
	"errors"
	"fmt"

	"hackfest/internal/domain/user"
)

// MaxMembers is the hard cap on team size, enforced by the backend and
// mirrored here so the invite widget can refuse over-selection up front.
const MaxMembers = 5

// Score is one judge's score entry for a team.
type Score struct {
	JudgeID string  `json:"judge"`
	Points  float64 `json:"points"`
}

// BugRecord counts bugs raised against a team's deployment during judging.
type BugRecord struct {
	RaisedBy string `json:"raisedBy"`
	Count    int    `json:"count"`
}

// Team is the backend's team record. The leader must always be a member
// and membership never exceeds MaxMembers.
type Team struct {
	ID       string      `json:"_id"`
	Name     string      `json:"name"`
	Members  []user.User `json:"members"`
	LeaderID string      `json:"teamLeader"`
	College  string      `json:"college"`
	Scores   []Score     `json:"scores,omitempty"`
	Deployed bool        `json:"deployed"`
	Bugs     []BugRecord `json:"bugs,omitempty"`
}

// Validate checks the team invariants this layer depends on.
// POST: returns nil iff members <= MaxMembers and the leader is a member
func (t Team) Validate() error {
	if t.ID == "" {
		return errors.New("team id cannot be empty")
	}
	if len(t.Members) > MaxMembers {
		return fmt.Errorf("team cannot have more than %d members", MaxMembers)
	}
	if t.LeaderID != "" && !t.HasMember(t.LeaderID) {
		return errors.New("team leader must be a member")
	}
	return nil
}

// HasMember reports whether the given user id is on the team.
func (t Team) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// IsLeader reports whether the given user id is the team leader.
func (t Team) IsLeader(userID string) bool {
	return userID != "" && t.LeaderID == userID
}

// OpenSlots returns how many more members can join.
// POST: result is in [0, MaxMembers]
func (t Team) OpenSlots() int {
	n := MaxMembers - len(t.Members)
	if n < 0 {
		return 0
	}
	return n
}

// MemberIDSet returns the member ids as a set for exclusion filtering.
func (t Team) MemberIDSet() map[string]bool {
	set := make(map[string]bool, len(t.Members))
	for _, m := range t.Members {
		set[m.ID] = true
	}
	return set
}

// TotalScore sums all judge score entries.
func (t Team) TotalScore() float64 {
	var sum float64
	for _, s := range t.Scores {
		sum += s.Points
	}
	return sum
}

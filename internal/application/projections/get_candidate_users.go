package projections

import (
	"context"

	"hackfest/internal/domain/team"
	"hackfest/internal/domain/user"
)

// CandidateUserSearcher is the user accessor interface needed by the
// candidate search projection.
type CandidateUserSearcher interface {
	Search(ctx context.Context, query string, offset, limit int) ([]user.User, error)
}

// CandidateOption is the narrow shape the selection widget consumes.
// The full user record travels in the side-channel Lookup map because
// the widget's option type is narrower than what avatar rendering needs.
type CandidateOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Email string `json:"email"`
}

// GetCandidateUsersQuery carries input for the candidate search.
type GetCandidateUsersQuery struct {
	Search string
	Offset int
	Limit  int
	Team   team.Team // current team; members are excluded from results
}

// GetCandidateUsersDeps holds dependencies for the candidate search.
type GetCandidateUsersDeps struct {
	Users CandidateUserSearcher
}

// CandidateUsersResult carries the projection output.
type CandidateUsersResult struct {
	Options       []CandidateOption    `json:"options"`
	Lookup        map[string]user.User `json:"lookup"`
	MaxSelectable int                  `json:"maxSelectable"`
}

// QueryCandidateUsers searches invite candidates for the team leader.
// POST: Options never contain a current member id; MaxSelectable is the
// team's open slot count (0 for a full team)
func QueryCandidateUsers(ctx context.Context, query GetCandidateUsersQuery, deps GetCandidateUsersDeps) (CandidateUsersResult, error) {
	result := CandidateUsersResult{
		Options:       []CandidateOption{},
		Lookup:        make(map[string]user.User),
		MaxSelectable: query.Team.OpenSlots(),
	}

	// A full team has nothing to select; skip the backend round trip.
	if result.MaxSelectable == 0 {
		return result, nil
	}

	found, err := deps.Users.Search(ctx, query.Search, query.Offset, query.Limit)
	if err != nil {
		return result, err
	}

	members := query.Team.MemberIDSet()
	for _, u := range found {
		if members[u.ID] {
			continue
		}
		result.Options = append(result.Options, CandidateOption{
			ID:    u.ID,
			Label: u.DisplayName(),
			Email: u.Email,
		})
		result.Lookup[u.ID] = u
	}
	return result, nil
}

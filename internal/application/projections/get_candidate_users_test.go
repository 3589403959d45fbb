package projections

import (
	"context"
	"errors"
	"testing"

	"hackfest/internal/domain/team"
	"hackfest/internal/domain/user"
)

// mockUserSearcher returns a canned result set.
type mockUserSearcher struct {
	users  []user.User
	err    error
	called bool
}

// Search implements CandidateUserSearcher for testing.
func (m *mockUserSearcher) Search(ctx context.Context, query string, offset, limit int) ([]user.User, error) {
	m.called = true
	return m.users, m.err
}

func testTeam(memberIDs ...string) team.Team {
	members := make([]user.User, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, user.User{ID: id, Username: "m-" + id, Email: id + "@uni.edu"})
	}
	leader := ""
	if len(memberIDs) > 0 {
		leader = memberIDs[0]
	}
	return team.Team{ID: "t1", Members: members, LeaderID: leader}
}

// TestCandidateUsers_ExcludesMembers tests the member exclusion filter.
// Scenario: team has 3 members, search "ann" returns 2 users, one of
// whom is already a member; exactly 1 option remains.
func TestCandidateUsers_ExcludesMembers(t *testing.T) {
	searcher := &mockUserSearcher{users: []user.User{
		{ID: "u2", Username: "anna", Email: "anna@uni.edu"},
		{ID: "u9", Username: "annika", Email: "annika@uni.edu"},
	}}
	query := GetCandidateUsersQuery{Search: "ann", Limit: 10, Team: testTeam("u1", "u2", "u3")}

	result, err := QueryCandidateUsers(context.Background(), query, GetCandidateUsersDeps{Users: searcher})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Options) != 1 || result.Options[0].ID != "u9" {
		t.Errorf("unexpected options: %+v", result.Options)
	}
	if _, ok := result.Lookup["u9"]; !ok {
		t.Error("lookup map should carry the full record for u9")
	}
	if _, ok := result.Lookup["u2"]; ok {
		t.Error("lookup map should not carry excluded members")
	}
}

// TestCandidateUsers_MaxSelectable tests the 5 - members cap.
func TestCandidateUsers_MaxSelectable(t *testing.T) {
	searcher := &mockUserSearcher{}
	query := GetCandidateUsersQuery{Team: testTeam("u1", "u2", "u3")}
	result, err := QueryCandidateUsers(context.Background(), query, GetCandidateUsersDeps{Users: searcher})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MaxSelectable != 2 {
		t.Errorf("got MaxSelectable %d, want 2", result.MaxSelectable)
	}
}

// TestCandidateUsers_FullTeamSkipsSearch tests that a full team never hits the backend.
func TestCandidateUsers_FullTeamSkipsSearch(t *testing.T) {
	searcher := &mockUserSearcher{users: []user.User{{ID: "u9"}}}
	query := GetCandidateUsersQuery{Team: testTeam("u1", "u2", "u3", "u4", "u5")}

	result, err := QueryCandidateUsers(context.Background(), query, GetCandidateUsersDeps{Users: searcher})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MaxSelectable != 0 || len(result.Options) != 0 {
		t.Errorf("full team should yield no selectable options: %+v", result)
	}
	if searcher.called {
		t.Error("search should not have been called for a full team")
	}
}

// TestCandidateUsers_SearchError tests error propagation with a safe result shape.
func TestCandidateUsers_SearchError(t *testing.T) {
	searcher := &mockUserSearcher{err: errors.New("boom")}
	query := GetCandidateUsersQuery{Team: testTeam("u1")}

	result, err := QueryCandidateUsers(context.Background(), query, GetCandidateUsersDeps{Users: searcher})
	if err == nil {
		t.Fatal("expected error")
	}
	if result.Options == nil {
		t.Error("options should be an empty slice, not nil")
	}
}

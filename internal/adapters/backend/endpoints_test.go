package backend

import "testing"

// TestResolve_JoinsBaseAndPath tests base/path joining.
func TestResolve_JoinsBaseAndPath(t *testing.T) {
	got := Resolve("https://api.hackfest.dev", GetTeam)
	if got != "https://api.hackfest.dev/api/team" {
		t.Errorf("got %q", got)
	}
}

// TestResolve_TrailingSlash tests that a trailing slash on base does not double up.
func TestResolve_TrailingSlash(t *testing.T) {
	got := Resolve("http://localhost:4000/", ListUsers)
	if got != "http://localhost:4000/api/users" {
		t.Errorf("got %q", got)
	}
}

// TestResolve_UnknownTagPanics tests that an unknown tag is a programming error.
func TestResolve_UnknownTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown endpoint tag")
		}
	}()
	Resolve("http://localhost", Endpoint("NOPE"))
}

// TestResolve_AllTagsHavePaths tests that every declared tag resolves.
func TestResolve_AllTagsHavePaths(t *testing.T) {
	tags := []Endpoint{
		Me, GetSession, Login, Register, Logout, VerifyEmail, ForgotPassword, ResetPassword,
		GetTeam, DeleteTeam, LeaveTeam, InviteUser, ListInvites, AcceptInvite, RejectInvite, ListUsers,
		GetSubmission, DeleteSubmission, GetStages, GetProgress, GetProblems, GetProblem,
		GetAdminStats, GetHomepageStats, GetHomepageLeaderboard, GetColleges,
		GetTeamJudgeMapping, AssignProblem, DeassignProblem,
	}
	for _, tag := range tags {
		if got := Resolve("http://x", tag); got == "http://x" {
			t.Errorf("tag %s resolved to bare base", tag)
		}
	}
}

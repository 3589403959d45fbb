package backend

import (
	"fmt"
	"strings"
)

// Endpoint is a symbolic tag for a backend API path. Handlers and
// accessors never build paths by hand; everything goes through Resolve.
type Endpoint string

const (
	Me             Endpoint = "ME"
	GetSession     Endpoint = "GET_SESSION"
	Login          Endpoint = "LOGIN"
	Register       Endpoint = "REGISTER"
	Logout         Endpoint = "LOGOUT"
	VerifyEmail    Endpoint = "VERIFY_EMAIL"
	ForgotPassword Endpoint = "FORGOT_PASSWORD"
	ResetPassword  Endpoint = "RESET_PASSWORD"

	GetTeam      Endpoint = "GET_TEAM"
	DeleteTeam   Endpoint = "DELETE_TEAM"
	LeaveTeam    Endpoint = "LEAVE_TEAM"
	InviteUser   Endpoint = "INVITE_USER"
	ListInvites  Endpoint = "LIST_INVITES"
	AcceptInvite Endpoint = "ACCEPT_INVITE"
	RejectInvite Endpoint = "REJECT_INVITE"
	ListUsers    Endpoint = "LIST_USERS"

	GetSubmission    Endpoint = "GET_SUBMISSION"
	DeleteSubmission Endpoint = "DELETE_SUBMISSION"

	GetStages   Endpoint = "GET_STAGES"
	GetProgress Endpoint = "GET_PROGRESS"

	GetProblems Endpoint = "GET_PROBLEMS"
	GetProblem  Endpoint = "GET_PROBLEM"

	GetAdminStats          Endpoint = "GET_ADMIN_STATS"
	GetHomepageStats       Endpoint = "GET_HOMEPAGE_STATS"
	GetHomepageLeaderboard Endpoint = "GET_HOMEPAGE_LEADERBOARD"
	GetColleges            Endpoint = "GET_COLLEGES"

	GetTeamJudgeMapping Endpoint = "GET_TEAM_JUDGE_MAPPING"
	AssignProblem       Endpoint = "ASSIGN_PROBLEM"
	DeassignProblem     Endpoint = "DEASSIGN_PROBLEM"
)

// paths is the fixed endpoint-to-path table.
var paths = map[Endpoint]string{
	Me:             "/api/auth/me",
	GetSession:     "/api/auth/session",
	Login:          "/api/auth/login",
	Register:       "/api/auth/register",
	Logout:         "/api/auth/logout",
	VerifyEmail:    "/api/auth/verify-email",
	ForgotPassword: "/api/auth/forgot-password",
	ResetPassword:  "/api/auth/reset-password",

	GetTeam:      "/api/team",
	DeleteTeam:   "/api/team",
	LeaveTeam:    "/api/team/leave",
	InviteUser:   "/api/team/invite",
	ListInvites:  "/api/team/invites",
	AcceptInvite: "/api/team/invites/accept",
	RejectInvite: "/api/team/invites/reject",
	ListUsers:    "/api/users",

	GetSubmission:    "/api/submission",
	DeleteSubmission: "/api/submission",

	GetStages:   "/api/stages",
	GetProgress: "/api/progress",

	GetProblems: "/api/problems",
	GetProblem:  "/api/problems", // callers append "/{id}"

	GetAdminStats:          "/api/admin/stats",
	GetHomepageStats:       "/api/public/stats",
	GetHomepageLeaderboard: "/api/public/leaderboard",
	GetColleges:            "/api/public/colleges",

	GetTeamJudgeMapping: "/api/admin/judge-mapping",
	AssignProblem:       "/api/admin/judge-mapping/assign",
	DeassignProblem:     "/api/admin/judge-mapping/deassign",
}

// Resolve joins the configured base URL with the endpoint's fixed path.
// An unknown tag is a programming error, not a runtime condition: it panics.
// PRE: base is a URL without a trailing slash requirement
// POST: returns an absolute URL string
func Resolve(base string, e Endpoint) string {
	path, ok := paths[e]
	if !ok {
		panic(fmt.Sprintf("backend: unknown endpoint %q", e))
	}
	return strings.TrimRight(base, "/") + path
}

package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/adapters/http/middleware"
	"hackfest/internal/application/listutil"
	"hackfest/internal/application/orchestrators"
	"hackfest/internal/application/projections"
	"hackfest/internal/domain/team"
)

// handleDashboard handles GET /dashboard — the participant home.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	result := projections.QueryGetDashboard(r.Context(),
		projections.GetDashboardQuery{Identity: identity},
		projections.GetDashboardDeps{
			Teams:       accessors.Teams,
			Submissions: accessors.Submissions,
			Invites:     accessors.Invites,
			Statements:  accessors.Statements,
		})

	data := map[string]any{
		"Identity":   result.Identity,
		"Team":       result.Team,
		"Submission": result.Submission,
		"Inbox":      result.Inbox,
		"Statements": result.Statements,
		"IsLeader":   result.IsLeader,
		"OpenSlots":  result.OpenSlots,
	}
	if result.InboxErr != nil {
		data["InboxError"] = backend.Message(result.InboxErr, "could not load invites")
	}
	renderTemplate(w, r, "dashboard.html", data)
}

// handleDashboardProgress handles GET /dashboard/progress — the stage timeline.
func handleDashboardProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetProgress(r.Context(),
		projections.GetProgressDeps{Progress: accessors.Progress})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "progress.html", map[string]any{
		"Stages":       result.Stages,
		"Progress":     result.Progress,
		"Disqualified": result.Disqualified,
	})
}

// handleDashboardRules handles GET /dashboard/rules — the rulebook inside
// the authenticated shell.
func handleDashboardRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "dashboard_rules.html", map[string]any{
		"Rules": rulesMarkdown,
	})
}

// currentTeam fetches the caller's team for mutation handlers that need
// a fresh snapshot (leadership checks, open slots).
func currentTeam(r *http.Request) (team.Team, error) {
	remote := accessors.Teams.Fetch(r.Context())
	t, ok := remote.Value()
	if !ok {
		if err := remote.Err(); err != nil {
			return team.Team{}, err
		}
		return team.Team{}, fmt.Errorf("you are not in a team")
	}
	return t, nil
}

// handleLeaveTeam handles POST /dashboard/team/leave.
func handleLeaveTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	t, err := currentTeam(r)
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not load your team"))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	err = orchestrators.ExecuteLeaveTeam(r.Context(),
		orchestrators.LeaveTeamInput{TeamID: t.ID, ActorID: identity.UserID},
		orchestrators.LeaveTeamDeps{Teams: accessors.Teams})
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not leave the team"))
	} else {
		setFlash(w, "success", "You left the team")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleDisbandTeam handles POST /dashboard/team/disband.
func handleDisbandTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	t, err := currentTeam(r)
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not load your team"))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	err = orchestrators.ExecuteDisbandTeam(r.Context(),
		orchestrators.DisbandTeamInput{ActorID: identity.UserID, Team: t},
		orchestrators.DisbandTeamDeps{Teams: accessors.Teams})
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not disband the team"))
	} else {
		setFlash(w, "success", "Team disbanded")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleSendInvites handles POST /dashboard/invites — the leader's batch
// invite send. UserIDs arrive as a multi-valued form field in selection
// order; failed ids are carried back in the redirect so the form can
// re-select them for a retry.
func handleSendInvites(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	t, err := currentTeam(r)
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not load your team"))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	report, err := orchestrators.ExecuteSendInvites(r.Context(),
		orchestrators.SendInvitesInput{
			ActorID: identity.UserID,
			Team:    t,
			UserIDs: r.Form["UserIDs"],
		},
		orchestrators.SendInvitesDeps{Invites: accessors.Invites})
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not send invites"))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	switch {
	case report.Failed() == 0:
		setFlash(w, "success", fmt.Sprintf("Sent %d invite(s)", report.Sent()))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	default:
		setFlash(w, "error", fmt.Sprintf("Sent %d, failed %d — failed users stay selected so you can retry",
			report.Sent(), report.Failed()))
		// Failed selections survive the redirect via the query string.
		http.Redirect(w, r, "/dashboard?retry="+strings.Join(report.FailedUserIDs(), ","), http.StatusSeeOther)
	}
}

// handleResolveInvite handles POST /dashboard/invites/accept and
// /dashboard/invites/reject.
func handleResolveInvite(accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		identity, _ := middleware.GetIdentityFromContext(r.Context())

		err := orchestrators.ExecuteResolveInvite(r.Context(),
			orchestrators.ResolveInviteInput{
				InviteID: r.FormValue("InviteID"),
				ActorID:  identity.UserID,
				Accept:   accept,
			},
			orchestrators.ResolveInviteDeps{Invites: accessors.Invites})
		if err != nil {
			setFlash(w, "error", backend.Message(err, "could not update the invite"))
		} else if accept {
			setFlash(w, "success", "Invite accepted — welcome to the team")
		} else {
			setFlash(w, "success", "Invite rejected")
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// handleDeleteSubmission handles POST /dashboard/submission/delete.
func handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	err := orchestrators.ExecuteDeleteSubmission(r.Context(),
		orchestrators.DeleteSubmissionInput{
			SubmissionID: r.FormValue("SubmissionID"),
			ActorID:      identity.UserID,
		},
		orchestrators.DeleteSubmissionDeps{Submissions: accessors.Submissions})
	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not delete the submission"))
	} else {
		setFlash(w, "success", "Submission deleted")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleUserSearch handles GET /api/users/search?q=<prefix>&offset=&limit=
// Returns candidate options for the invite widget as JSON.
func handleUserSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	t, err := currentTeam(r)
	if err != nil {
		http.Error(w, backend.Message(err, "could not load your team"), http.StatusBadRequest)
		return
	}

	sp := listutil.ParseSearchParams(r.URL.Query())
	result, err := projections.QueryCandidateUsers(r.Context(),
		projections.GetCandidateUsersQuery{
			Search: sp.Query,
			Offset: sp.Offset,
			Limit:  sp.Limit,
			Team:   t,
		},
		projections.GetCandidateUsersDeps{Users: accessors.Users})
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

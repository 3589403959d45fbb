package web

import (
	"net/http"

	"hackfest/internal/adapters/backend"
	judgeAccessor "hackfest/internal/adapters/backend/judge"
	"hackfest/internal/adapters/http/middleware"
	"hackfest/internal/application/listutil"
	"hackfest/internal/application/orchestrators"
	"hackfest/internal/application/projections"
	"hackfest/internal/domain/statement"
	"hackfest/internal/domain/stats"
)

// breakdownPage slices one admin breakdown table to the requested page.
// Both tables share the page/per_page params; each clamps to its own length.
func breakdownPage(rows []stats.CountRow, params listutil.PageParams) ([]stats.CountRow, listutil.PageInfo) {
	info := listutil.NewPageInfo(params.Page, params.PerPage, len(rows))
	start, end := info.Slice()
	return rows[start:end], info
}

// handleAdminDashboard handles GET /dashboard/admin — aggregate stats
// plus the judge-to-team mapping table.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result := projections.QueryAdminStats(r.Context(),
		projections.GetAdminStatsDeps{Stats: accessors.Stats})

	// The mapping and statement list degrade independently of the stats
	// snapshot; each failure is its own notice, not a page error.
	mapping, mappingErr := accessors.Judges.Mapping(r.Context())
	if mapping == nil {
		mapping = []judgeAccessor.MappingRow{}
	}

	statements, err := accessors.Statements.List(r.Context())
	if err != nil {
		statements = []statement.Statement{}
	}

	params := listutil.ParsePageParams(r.URL.Query())
	collegeRows, collegePages := breakdownPage(result.Stats.ByCollege, params)
	stateRows, statePages := breakdownPage(result.Stats.ByState, params)

	data := map[string]any{
		"Stats":          result.Stats,
		"ByCollege":      collegeRows,
		"CollegePages":   collegePages,
		"ByState":        stateRows,
		"StatePages":     statePages,
		"PerPageOptions": listutil.PerPageOptions,
		"Mapping":        mapping,
		"Statements":     statements,
	}
	if result.Failed {
		data["StatsError"] = "could not load statistics, showing zeros"
	}
	if mappingErr != nil {
		data["MappingError"] = backend.Message(mappingErr, "could not load the judge mapping")
	}
	renderTemplate(w, r, "admin.html", data)
}

// handleAssignProblem handles POST /dashboard/admin/assign.
func handleAssignProblem(w http.ResponseWriter, r *http.Request) {
	handleJudgeAssignment(w, r, true)
}

// handleDeassignProblem handles POST /dashboard/admin/deassign.
func handleDeassignProblem(w http.ResponseWriter, r *http.Request) {
	handleJudgeAssignment(w, r, false)
}

func handleJudgeAssignment(w http.ResponseWriter, r *http.Request, assign bool) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	input := orchestrators.AssignProblemInput{
		JudgeID:     r.FormValue("JudgeID"),
		StatementID: r.FormValue("StatementID"),
		ActorID:     identity.UserID,
	}
	deps := orchestrators.AssignProblemDeps{Judges: accessors.Judges}

	var err error
	if assign {
		err = orchestrators.ExecuteAssignProblem(r.Context(), input, deps)
	} else {
		err = orchestrators.ExecuteDeassignProblem(r.Context(), input, deps)
	}

	if err != nil {
		setFlash(w, "error", backend.Message(err, "could not update the assignment"))
	} else if assign {
		setFlash(w, "success", "Problem assigned")
	} else {
		setFlash(w, "success", "Problem deassigned")
	}
	http.Redirect(w, r, "/dashboard/admin", http.StatusSeeOther)
}

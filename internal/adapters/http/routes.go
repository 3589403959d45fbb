package web

import (
	"net/http"

	"hackfest/internal/adapters/http/middleware"
)

// registerRoutes attaches all handlers to the mux. Public pages go on
// bare paths; everything under /dashboard requires a resolved identity,
// and the admin page additionally requires the admin role.
func registerRoutes(mux *http.ServeMux) {
	// Public site
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/rules", handleRules)
	mux.HandleFunc("/meet-the-team", handleMeetTheTeam)
	mux.HandleFunc("/theme", handleTheme)

	// Auth proxy
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/verify-email", handleVerifyEmail)
	mux.HandleFunc("/reset-password", handleResetPassword)

	// Participant dashboard
	mux.Handle("/dashboard", middleware.RequireAuth(http.HandlerFunc(handleDashboard)))
	mux.Handle("/dashboard/progress", middleware.RequireAuth(http.HandlerFunc(handleDashboardProgress)))
	mux.Handle("/dashboard/rules", middleware.RequireAuth(http.HandlerFunc(handleDashboardRules)))
	mux.Handle("/dashboard/team/leave", middleware.RequireAuth(http.HandlerFunc(handleLeaveTeam)))
	mux.Handle("/dashboard/team/disband", middleware.RequireAuth(http.HandlerFunc(handleDisbandTeam)))
	mux.Handle("/dashboard/invites", middleware.RequireAuth(http.HandlerFunc(handleSendInvites)))
	mux.Handle("/dashboard/invites/accept", middleware.RequireAuth(handleResolveInvite(true)))
	mux.Handle("/dashboard/invites/reject", middleware.RequireAuth(handleResolveInvite(false)))
	mux.Handle("/dashboard/submission/delete", middleware.RequireAuth(http.HandlerFunc(handleDeleteSubmission)))

	// Admin
	mux.Handle("/dashboard/admin", middleware.RequireAdmin(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("/dashboard/admin/assign", middleware.RequireAdmin(http.HandlerFunc(handleAssignProblem)))
	mux.Handle("/dashboard/admin/deassign", middleware.RequireAdmin(http.HandlerFunc(handleDeassignProblem)))

	// JSON API for the invite widget
	mux.Handle("/api/users/search", middleware.RequireAuth(http.HandlerFunc(handleUserSearch)))
}

package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"hackfest/internal/adapters/backend"
	inviteAccessor "hackfest/internal/adapters/backend/invite"
	judgeAccessor "hackfest/internal/adapters/backend/judge"
	progressAccessor "hackfest/internal/adapters/backend/progress"
	sessionAccessor "hackfest/internal/adapters/backend/session"
	statementAccessor "hackfest/internal/adapters/backend/statement"
	statsAccessor "hackfest/internal/adapters/backend/stats"
	submissionAccessor "hackfest/internal/adapters/backend/submission"
	teamAccessor "hackfest/internal/adapters/backend/team"
	usersAccessor "hackfest/internal/adapters/backend/users"
	web "hackfest/internal/adapters/http"
	"hackfest/internal/adapters/http/perf"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	env := envOrDefault("HACKFEST_ENV", "development")

	// Structured logs: JSON in production, text for local reading.
	level := slog.LevelInfo
	if env != "production" {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	apiBase := envOrDefault("HACKFEST_API_BASE", "http://localhost:5000")

	// Performance instrumentation: collector records page requests and
	// backend calls for the perf dashboard.
	collector := perf.NewCollector(perf.DefaultRingSize)
	client := backend.NewClient(apiBase, collector)

	accessors := &web.Accessors{
		Backend:     client,
		Sessions:    sessionAccessor.NewHTTPAccessor(client),
		Teams:       teamAccessor.NewHTTPAccessor(client),
		Invites:     inviteAccessor.NewHTTPAccessor(client),
		Users:       usersAccessor.NewHTTPAccessor(client),
		Submissions: submissionAccessor.NewHTTPAccessor(client),
		Progress:    progressAccessor.NewHTTPAccessor(client),
		Statements:  statementAccessor.NewHTTPAccessor(client),
		Stats:       statsAccessor.NewHTTPAccessor(client),
		Judges:      judgeAccessor.NewHTTPAccessor(client),
	}

	mux := web.NewMux("static", accessors, collector)

	addr := envOrDefault("HACKFEST_ADDR", ":8080")
	log.Printf("Hackfest %s starting on %s (env=%s, api=%s)", version, addr, env, apiBase)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

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
	"hackfest/internal/adapters/http/middleware"
	"hackfest/internal/adapters/http/perf"
)

// Accessors holds all backend accessor dependencies.
type Accessors struct {
	Backend     *backend.Client // raw client, used only by the auth proxy
	Sessions    sessionAccessor.Accessor
	Teams       teamAccessor.Accessor
	Invites     inviteAccessor.Accessor
	Users       usersAccessor.Accessor
	Submissions submissionAccessor.Accessor
	Progress    progressAccessor.Accessor
	Statements  statementAccessor.Accessor
	Stats       statsAccessor.Accessor
	Judges      judgeAccessor.Accessor
}

// loadCSRFKey reads the CSRF secret from HACKFEST_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("HACKFEST_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("HACKFEST_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("HACKFEST_ENV") == "production" {
		log.Fatal("HACKFEST_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (forms won't survive restart). Set HACKFEST_CSRF_KEY for production.")
	return key
}

// ExtraTrustedOrigins lets tests add their ephemeral server host to the
// CSRF trusted-origin list before calling NewMux.
var ExtraTrustedOrigins []string

// trustedOrigins derives the CSRF trusted-origin list from HACKFEST_SITE_URL.
func trustedOrigins() []string {
	origins := append([]string{}, ExtraTrustedOrigins...)
	site := os.Getenv("HACKFEST_SITE_URL")
	if site == "" {
		return origins
	}
	u, err := url.Parse(site)
	if err != nil || u.Host == "" {
		return origins
	}
	return append(origins, u.Host)
}

// Global accessors instance (set by NewMux)
var accessors *Accessors

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, a *Accessors, collector *perf.Collector) http.Handler {
	accessors = a
	perfCollector = collector

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()
	secure := os.Getenv("HACKFEST_ENV") == "production"

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, trustedOrigins(), secure),
		middleware.Auth(a.Sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}

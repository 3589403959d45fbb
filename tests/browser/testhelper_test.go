package browser_test

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

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
	"hackfest/internal/domain/invite"
	"hackfest/internal/domain/stage"
	"hackfest/internal/domain/statement"
	"hackfest/internal/domain/stats"
	"hackfest/internal/domain/team"
	"hackfest/internal/domain/user"
)

// stubAccount pairs a seeded user with its login password.
type stubAccount struct {
	User     user.User
	Password string
	TeamID   string
}

// stubBackend is an in-memory stand-in for the REST backend the site
// proxies to. It speaks just enough of the API for browser flows:
// cookie sessions, one team, invites, and the public read endpoints.
type stubBackend struct {
	mu       sync.Mutex
	server   *httptest.Server
	accounts map[string]*stubAccount // by email
	sessions map[string]string       // sid -> email
	team     team.Team
	invites  []invite.Invite
}

// newStubBackend seeds a leader with a two-member team, one candidate
// user outside any team, and static public data.
func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	leader := user.User{ID: "u1", Email: "ann@test.com", Username: "ann", Role: user.RoleParticipant, College: "IIT Delhi"}
	member := user.User{ID: "u2", Email: "dev@test.com", Username: "dev", Role: user.RoleParticipant, College: "IIT Delhi"}
	candidate := user.User{ID: "u9", Email: "ravi@test.com", Username: "ravi", Role: user.RoleParticipant, College: "BITS Pilani"}

	sb := &stubBackend{
		accounts: map[string]*stubAccount{
			leader.Email:    {User: leader, Password: "TestPass123!", TeamID: "t1"},
			member.Email:    {User: member, Password: "TestPass123!", TeamID: "t1"},
			candidate.Email: {User: candidate, Password: "TestPass123!"},
		},
		sessions: map[string]string{},
		team: team.Team{
			ID:       "t1",
			Name:     "Segfault",
			College:  "IIT Delhi",
			LeaderID: leader.ID,
			Members:  []user.User{leader, member},
		},
	}
	sb.server = httptest.NewServer(sb.routes())
	t.Cleanup(sb.server.Close)
	return sb
}

func (s *stubBackend) URL() string { return s.server.URL }

// caller resolves the session cookie to a seeded account.
func (s *stubBackend) caller(r *http.Request) *stubAccount {
	c, err := r.Cookie("connect.sid")
	if err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.sessions[c.Value]
	if !ok {
		return nil
	}
	return s.accounts[email]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func apiError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func (s *stubBackend) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&creds)
		s.mu.Lock()
		defer s.mu.Unlock()
		acct, ok := s.accounts[creds.Email]
		if !ok || acct.Password != creds.Password {
			apiError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		sid := uuid.NewString()
		s.sessions[sid] = creds.Email
		http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: sid, Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]string{"message": "logged in"})
	})

	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("connect.sid"); err == nil {
			s.mu.Lock()
			delete(s.sessions, c.Value)
			s.mu.Unlock()
		}
		http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
	})

	mux.HandleFunc("/api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		acct := s.caller(r)
		if acct == nil {
			apiError(w, http.StatusUnauthorized, "not logged in")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"userId": acct.User.ID, "teamId": acct.TeamID})
	})

	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		acct := s.caller(r)
		if acct == nil {
			apiError(w, http.StatusUnauthorized, "not logged in")
			return
		}
		writeJSON(w, http.StatusOK, acct.User)
	})

	mux.HandleFunc("/api/team", func(w http.ResponseWriter, r *http.Request) {
		acct := s.caller(r)
		if acct == nil || acct.TeamID == "" {
			apiError(w, http.StatusNotFound, "you are not in a team")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, s.team)
	})

	mux.HandleFunc("/api/team/invites", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, s.invites)
	})

	mux.HandleFunc("/api/team/invite", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TeamID string `json:"teamId"`
			UserID string `json:"userId"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		defer s.mu.Unlock()
		var name string
		for _, acct := range s.accounts {
			if acct.User.ID == body.UserID {
				if acct.TeamID != "" {
					apiError(w, http.StatusConflict, "user is already in a team")
					return
				}
				name = acct.User.Username
			}
		}
		s.invites = append(s.invites, invite.Invite{
			ID:        uuid.NewString(),
			TeamID:    body.TeamID,
			TeamName:  s.team.Name,
			UserID:    body.UserID,
			UserName:  name,
			Direction: invite.DirectionOutgoing,
			CreatedAt: time.Now(),
		})
		writeJSON(w, http.StatusOK, map[string]string{"message": "invite sent"})
	})

	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		s.mu.Lock()
		defer s.mu.Unlock()
		matches := []user.User{}
		for _, acct := range s.accounts {
			if q == "" || containsFold(acct.User.Username, q) || containsFold(acct.User.Email, q) {
				matches = append(matches, acct.User)
			}
		}
		writeJSON(w, http.StatusOK, matches)
	})

	mux.HandleFunc("/api/submission", func(w http.ResponseWriter, r *http.Request) {
		apiError(w, http.StatusNotFound, "no submission")
	})

	mux.HandleFunc("/api/progress", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stage.Progress{TeamID: "t1", StageID: "s2"})
	})

	mux.HandleFunc("/api/stages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []stage.Stage{
			{ID: "s1", Name: stage.NameRegistration, Title: "Registration"},
			{ID: "s2", Name: stage.NameSubmission, Title: "Submission"},
			{ID: "s3", Name: stage.NameQualifiers, Title: "Qualifiers"},
			{ID: "s4", Name: stage.NameFinals, Title: "Finals"},
			{ID: "s5", Name: stage.NameResults, Title: "Results"},
		})
	})

	mux.HandleFunc("/api/problems", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []statement.Statement{
			{ID: "p1", Title: "Clean Water Tracker", Description: "Track **water quality** reports.", SDGID: 6},
		})
	})

	mux.HandleFunc("/api/public/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stats.HomepageStats{Participants: 412, Teams: 97, Colleges: 31, Submissions: 54})
	})

	mux.HandleFunc("/api/public/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []stats.LeaderboardRow{
			{Rank: 1, TeamName: "Segfault", College: "IIT Delhi", Score: 95},
			{Rank: 2, TeamName: "NullPointer", College: "BITS Pilani", Score: 90},
		})
	})

	mux.HandleFunc("/api/public/colleges", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []string{"IIT Delhi", "BITS Pilani", "other"})
	})

	return mux
}

// containsFold is a case-insensitive substring check for the user search stub.
func containsFold(haystack, needle string) bool {
	h, n := []rune(haystack), []rune(needle)
	if len(n) > len(h) {
		return false
	}
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		return r
	}
outer:
	for i := 0; i+len(n) <= len(h); i++ {
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				continue outer
			}
		}
		return true
	}
	return false
}

// testApp holds the running site, its stub backend, and Playwright handles.
type testApp struct {
	BaseURL string
	Backend *stubBackend
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp starts the site against a fresh stub backend and a headless browser.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	stub := newStubBackend(t)

	collector := perf.NewCollector(perf.DefaultRingSize)
	client := backend.NewClient(stub.URL(), collector)
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

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	web.ExtraTrustedOrigins = append(web.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	// Page loads fetch several static assets each; the default per-IP
	// limit would throttle the browser.
	web.RateLimitPerSecond = 1000

	mux := web.NewMux("static", accessors, collector)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Backend: stub,
		Server:  srv,
		PW:      pw,
		Browser: browser,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login signs in through the form with the given seeded account.
func (a *testApp) login(t *testing.T, page playwright.Page, email, password string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=Email]").Fill(email); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=Password]").Fill(password); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to dashboard: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}

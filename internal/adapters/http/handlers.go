package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/adapters/http/middleware"
	"hackfest/internal/application/projections"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

const themeCookieName = "hackfest_theme"

// currentTheme reads the theme cookie; anything but "light" means dark.
func currentTheme(r *http.Request) string {
	if cookie, err := r.Cookie(themeCookieName); err == nil && cookie.Value == "light" {
		return "light"
	}
	return "dark"
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	identity, loggedIn := middleware.GetIdentityFromContext(r.Context())
	theme := currentTheme(r)

	funcMap := template.FuncMap{
		"isLoggedIn":  func() bool { return loggedIn },
		"currentUser": func() string { return identity.User.DisplayName() },
		"isAdmin":     func() bool { return loggedIn && identity.User.IsAdmin() },
		"hasTeam":     func() bool { return loggedIn && identity.HasTeam() },
		"theme":       func() string { return theme },
		"csrfToken":   func() string { return csrf.Token(r) },
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	if flash, ok := popFlash(w, r); ok {
		data["Flash"] = flash
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleHome handles GET / — the public landing page.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result := projections.QueryGetHome(r.Context(), projections.GetHomeDeps{Stats: accessors.Stats})

	renderTemplate(w, r, "home.html", map[string]any{
		"Stats":       result.Stats,
		"Leaderboard": result.Leaderboard,
	})
}

// handleRules handles GET /rules — the public rulebook.
func handleRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "rules.html", map[string]any{
		"Rules": rulesMarkdown,
	})
}

// handleMeetTheTeam handles GET /meet-the-team — the organizer roster.
func handleMeetTheTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "meet_the_team.html", map[string]any{
		"Groups": organizerGroups,
	})
}

// handleVerifyEmail handles GET /verify-email?token=<t>
// The token in the link is relayed to the backend; the page reports the outcome.
func handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		renderTemplate(w, r, "verify_email.html", map[string]any{
			"Error": "verification link is missing its token",
		})
		return
	}

	body, _ := json.Marshal(map[string]string{"token": token})
	err := accessors.Backend.Post(r.Context(), backend.VerifyEmail, json.RawMessage(body), nil)
	if err != nil {
		renderTemplate(w, r, "verify_email.html", map[string]any{
			"Error": backend.Message(err, "verification failed, the link may have expired"),
		})
		return
	}

	renderTemplate(w, r, "verify_email.html", map[string]any{"Verified": true})
}

// handleResetPassword handles GET (form) and POST (submit) for /reset-password.
// With a token in the URL the form sets a new password; without one it
// requests a reset email.
func handleResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if r.Method == "GET" {
		renderTemplate(w, r, "reset_password.html", map[string]any{
			"Token": token,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		token = r.FormValue("Token")

		if token == "" {
			// Request phase: ask the backend to send the reset email.
			body, _ := json.Marshal(map[string]string{"email": r.FormValue("Email")})
			err := accessors.Backend.Post(r.Context(), backend.ForgotPassword, json.RawMessage(body), nil)
			if err != nil {
				renderTemplate(w, r, "reset_password.html", map[string]any{
					"Error": backend.Message(err, "could not send the reset email"),
				})
				return
			}
			renderTemplate(w, r, "reset_password.html", map[string]any{"Sent": true})
			return
		}

		if r.FormValue("Password") != r.FormValue("ConfirmPassword") {
			renderTemplate(w, r, "reset_password.html", map[string]any{
				"Token": token,
				"Error": "passwords do not match",
			})
			return
		}

		body, _ := json.Marshal(map[string]string{
			"token":    token,
			"password": r.FormValue("Password"),
		})
		err := accessors.Backend.Post(r.Context(), backend.ResetPassword, json.RawMessage(body), nil)
		if err != nil {
			renderTemplate(w, r, "reset_password.html", map[string]any{
				"Token": token,
				"Error": backend.Message(err, "password reset failed, the link may have expired"),
			})
			return
		}

		setFlash(w, "success", "Password updated, you can log in now")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleTheme handles POST /theme — toggles the light/dark cookie.
func handleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	theme := r.FormValue("Theme")
	if theme != "light" {
		theme = "dark"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookieName,
		Value:    theme,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   365 * 24 * 3600,
	})

	http.Redirect(w, r, safeReturnPath(r), http.StatusSeeOther)
}

// safeReturnPath extracts a same-site path to redirect back to.
// Anything absolute or missing falls back to "/".
func safeReturnPath(r *http.Request) string {
	ref := r.FormValue("Return")
	if ref == "" {
		ref = r.Referer()
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.Path
}

// drainAndClose discards the rest of a forwarded response body so the
// transport connection can be reused.
func drainAndClose(body io.ReadCloser) {
	io.Copy(io.Discard, io.LimitReader(body, 1<<16))
	body.Close()
}

package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/adapters/http/middleware"
)

// relaySetCookie copies backend Set-Cookie headers to the browser. The
// backend owns the session cookie; this proxy never mints its own.
func relaySetCookie(w http.ResponseWriter, resp *http.Response) {
	for _, c := range resp.Header.Values("Set-Cookie") {
		w.Header().Add("Set-Cookie", c)
	}
}

// forwardedMessage reads a {message} error body from a forwarded response.
func forwardedMessage(resp *http.Response, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &body) == nil && body.Message != "" {
		return body.Message
	}
	return fallback
}

// handleLogin handles GET (form) and POST (authenticate) for /login.
// The POST is a straight proxy to the backend: credentials go in, the
// backend's Set-Cookie comes back out.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetIdentityFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", nil)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		payload, _ := json.Marshal(map[string]string{
			"email":    r.FormValue("Email"),
			"password": r.FormValue("Password"),
		})
		resp, err := accessors.Backend.Forward(r.Context(), http.MethodPost, backend.Login,
			bytes.NewReader(payload), "application/json")
		if err != nil {
			internalError(w, err)
			return
		}
		defer drainAndClose(resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			renderTemplate(w, r, "login.html", map[string]any{
				"Error": forwardedMessage(resp, "login failed"),
				"Email": r.FormValue("Email"),
			})
			return
		}

		relaySetCookie(w, resp)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// indianStates is the fixed state dropdown for registration.
var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Delhi", "Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jammu and Kashmir",
	"Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
}

// registerFormData re-renders the registration page with the college
// dropdown and whatever the user already typed.
func registerFormData(r *http.Request, errMsg string) map[string]any {
	colleges, err := accessors.Stats.Colleges(r.Context())
	if err != nil {
		colleges = []string{}
	}
	return map[string]any{
		"Colleges": colleges,
		"States":   indianStates,
		"Error":    errMsg,
		"Form": map[string]string{
			"Email":    r.FormValue("Email"),
			"Username": r.FormValue("Username"),
			"Mobile":   r.FormValue("Mobile"),
			"College":  r.FormValue("College"),
			"State":    r.FormValue("State"),
			"Gender":   r.FormValue("Gender"),
		},
	}
}

// handleRegister handles GET (form) and POST (create account) for /register.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetIdentityFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "register.html", registerFormData(r, ""))
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		if r.FormValue("Password") != r.FormValue("ConfirmPassword") {
			renderTemplate(w, r, "register.html", registerFormData(r, "passwords do not match"))
			return
		}

		payload, _ := json.Marshal(map[string]string{
			"email":        r.FormValue("Email"),
			"username":     r.FormValue("Username"),
			"password":     r.FormValue("Password"),
			"mobile":       r.FormValue("Mobile"),
			"college":      r.FormValue("College"),
			"collegeOther": r.FormValue("CollegeOther"),
			"state":        r.FormValue("State"),
			"gender":       r.FormValue("Gender"),
		})
		resp, err := accessors.Backend.Forward(r.Context(), http.MethodPost, backend.Register,
			bytes.NewReader(payload), "application/json")
		if err != nil {
			internalError(w, err)
			return
		}
		defer drainAndClose(resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			renderTemplate(w, r, "register.html",
				registerFormData(r, forwardedMessage(resp, "registration failed")))
			return
		}

		setFlash(w, "success", "Account created — check your inbox for the verification link")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout. The backend invalidates the session
// and its Set-Cookie clears the browser cookie on the way through.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resp, err := accessors.Backend.Forward(r.Context(), http.MethodPost, backend.Logout, nil, "")
	if err == nil {
		relaySetCookie(w, resp)
		drainAndClose(resp.Body)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

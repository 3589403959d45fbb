package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "hackfest_flash"

// Flash is a one-shot notification rendered as a toast on the next page.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// setFlash stores a one-shot notification cookie. The next HTML render
// pops it, so a redirect-after-POST can still notify the user.
func setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlash reads and clears the flash cookie.
func popFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Flash{}, false
	}
	kind, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return Flash{}, false
	}
	return Flash{Kind: kind, Message: message}, true
}

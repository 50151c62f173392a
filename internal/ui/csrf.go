package ui

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"net/http"
	"strings"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const (
	csrfCookieName = "portal_csrf"
	csrfHeaderName = "X-CSRF-Token"
	csrfFormField  = "csrf_token"
	// Every form posts below /ui, so the cookie is not sent to / or /healthz.
	csrfCookiePath = "/ui"
)

type csrfContextKey struct{}

// validCSRFToken reports whether s has the shape rand.Text produces:
// 26 characters of the base32 alphabet.
func validCSRFToken(s string) bool {
	if len(s) != 26 {
		return false
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < '2' || c > '7') {
			return false
		}
	}
	return true
}

// EnsureCSRFToken issues the CSRF cookie when the request has none, or a
// malformed one, and puts the token in the request context for forms.
func (h *Handler) EnsureCSRFToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := csrfCookie(r)
		if token == "" {
			token = rand.Text()
			http.SetCookie(w, &http.Cookie{
				Name:     csrfCookieName,
				Value:    token,
				Path:     csrfCookiePath,
				HttpOnly: true,
				Secure:   h.Production,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), csrfContextKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCSRF rejects unsafe methods unless the X-CSRF-Token header or the
// csrf_token form field equals the cookie.
func (h *Handler) RequireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		cookieToken := csrfCookie(r)
		if cookieToken == "" {
			h.Logger.WarnContext(r.Context(), "csrf cookie missing", "path", r.URL.Path)
			renderHTML(w, http.StatusForbidden, errorPage("CSRF Validation Failed", "Missing CSRF token cookie."))
			return
		}

		sent := strings.TrimSpace(r.Header.Get(csrfHeaderName))
		if sent == "" {
			_ = r.ParseForm()
			sent = strings.TrimSpace(r.PostForm.Get(csrfFormField))
		}
		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(sent)) != 1 {
			h.Logger.WarnContext(r.Context(), "csrf token mismatch", "path", r.URL.Path)
			renderHTML(w, http.StatusForbidden, errorPage("CSRF Validation Failed", "Invalid or missing CSRF token."))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// csrfField is the hidden input every portal form carries.
func csrfField(r *http.Request) gomponents.Node {
	token, _ := r.Context().Value(csrfContextKey{}).(string)
	return html.Input(html.Type("hidden"), html.Name(csrfFormField), html.Value(token))
}

// csrfCookie returns the cookie token, or "" when absent or malformed.
func csrfCookie(r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}
	if v := strings.TrimSpace(cookie.Value); validCSRFToken(v) {
		return v
	}
	return ""
}

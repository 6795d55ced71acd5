package handlers

import (
	"encoding/base64"
	"fleet-console/internal/services"
	"net/http"
	"strings"
)

const flashCookie = "fleet_flash"

// setFlash stores a notice for the next page load, after a redirect.
func setFlash(w http.ResponseWriter, n services.Notice) {
	if n.IsZero() {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(string(n.Kind) + "\n" + n.Text)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash returns the pending notice, if any, and clears it.
func takeFlash(w http.ResponseWriter, r *http.Request) services.Notice {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return services.Notice{}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return services.Notice{}
	}
	kind, text, ok := strings.Cut(string(raw), "\n")
	if !ok || text == "" {
		return services.Notice{}
	}
	switch services.NoticeKind(kind) {
	case services.NoticeSuccess, services.NoticeError:
		return services.Notice{Kind: services.NoticeKind(kind), Text: text}
	}
	return services.Notice{}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, path string, n services.Notice) {
	setFlash(w, n)
	http.Redirect(w, r, path, http.StatusSeeOther)
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionCookie es la cookie que identifica el navegador para el estado de UI.
const SessionCookie = "flock_sid"

// Session:
// - Si viene la cookie con un UUID válido => lo usa.
// - Si no => genera uno nuevo y setea la cookie.
// No hay login: la sesión sólo agrupa estado de UI (secciones abiertas, etc).
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			if id, err := uuid.Parse(strings.TrimSpace(c.Value)); err == nil {
				sid = id.String()
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSession(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/zotcurve/internal/sessions"
)

type Middleware func(http.HandlerFunc) http.HandlerFunc

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func WithAccessLogs(logger *slog.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next(recorder, r)
			logger.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start))
		}
	}
}

// WithSession loads the visitor's session from its cookie, creating a new one
// when the cookie is missing or points to nothing.
func WithSession(
	logger *slog.Logger,
	sessionsStore *sessions.Store,
	defaultYear string,
) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var session *sessions.Session
			if id, ok := sessions.FromCookies(r.Cookies()); ok {
				found, err := sessionsStore.FindByID(r.Context(), id)
				if err != nil && !errors.Is(err, sessions.ErrNotFound) {
					logger.Error("find session", "error", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				session = found
			}

			if session == nil {
				session = sessions.New(defaultYear)
				if err := sessionsStore.Insert(r.Context(), session); err != nil {
					logger.Error("insert session", "error", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}

			for _, cookie := range session.ToCookies(r.TLS != nil) {
				w.Header().Add("Set-Cookie", cookie.String())
			}
			next(w, r.WithContext(sessions.NewContext(r.Context(), session)))
		}
	}
}

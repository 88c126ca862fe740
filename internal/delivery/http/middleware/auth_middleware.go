package middleware

import (
	"context"
	"net/http"

	"medicita/internal/domain/entity"
	"medicita/pkg/response"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)

// SessionReader is satisfied by the auth usecase
type SessionReader interface {
	CurrentSession(ctx context.Context) (*entity.Session, error)
}

type AuthMiddleware struct {
	sessions SessionReader
}

func NewAuthMiddleware(sessions SessionReader) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate requires an active session and puts it in the request context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.sessions.CurrentSession(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to read session")
			return
		}
		if session == nil {
			response.Unauthorized(w, "No active session")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// WithSession returns a copy of ctx carrying session
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSessionFromContext extracts the session stored by Authenticate
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}

// GetUserIDFromContext extracts the logged-in user's id from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return "", false
	}
	return session.ID, true
}

// GetRequestIDFromContext extracts the request id set by RequestID
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}

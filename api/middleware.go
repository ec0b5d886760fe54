package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/database"
	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
)

// authMiddleware verifies bearer tokens minted by the external
// identity provider and mirrors the actor into the users table.
type authMiddleware struct {
	responder Responder
	secret    []byte
	userRepo  *database.UserRepo
}

func newAuthMiddleware(secret string, userRepo *database.UserRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		secret:    []byte(secret),
		userRepo:  userRepo,
	}
}

// actorFromRequest parses and verifies the bearer token, returning the
// actor it describes. A missing header yields (nil, nil).
func (m authMiddleware) actorFromRequest(r *http.Request) (*models.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errs.NewMissingTokenError()
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewInvalidTokenError()
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errs.NewInvalidTokenError()
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errs.NewInvalidTokenError()
	}

	actor := &models.User{ID: sub}
	if email, ok := claims["email"].(string); ok && email != "" {
		actor.Email = &email
	}
	if name, ok := claims["first_name"].(string); ok && name != "" {
		actor.FirstName = &name
	}
	if name, ok := claims["last_name"].(string); ok && name != "" {
		actor.LastName = &name
	}
	if picture, ok := claims["profile_image_url"].(string); ok && picture != "" {
		actor.ProfileImageURL = &picture
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		actor.IsAdmin = isAdmin
	}
	return actor, nil
}

// identify attaches the actor to the context when a valid token is
// present, and lets anonymous requests through untouched.
func (m authMiddleware) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := m.actorFromRequest(r)
		if err != nil || actor == nil {
			next.ServeHTTP(w, r)
			return
		}
		if err := m.userRepo.Upsert(actor); err != nil {
			m.responder.WriteError(w, errs.NewDatabaseError("upsert", "user", err))
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxWithActor(r.Context(), actor)))
	})
}

// authenticate rejects requests without a verified actor.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := m.actorFromRequest(r)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}
		if actor == nil {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}
		if err := m.userRepo.Upsert(actor); err != nil {
			m.responder.WriteError(w, errs.NewDatabaseError("upsert", "user", err))
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxWithActor(r.Context(), actor)))
	})
}

// requireAdmin assumes authenticate already ran.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromCtx(r.Context())
		if !ok {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}
		if !actor.IsAdmin {
			m.responder.WriteError(w, errs.NewInsufficientRoleError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Optionally log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}

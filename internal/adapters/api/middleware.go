package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/starchart/starchart/internal/core/domain"
	"github.com/starchart/starchart/internal/core/ports"
	"github.com/starchart/starchart/internal/infrastructure/metrics"
)

type contextKey string

const (
	CtxUser contextKey = "user"
	CtxRole contextKey = "role"
)

// HashKey returns the stored form of a raw API key.
func HashKey(rawKey string) string {
	hash := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(hash[:])
}

func AuthMiddleware(users ports.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			apiKey, err := users.GetAPIKeyByHash(r.Context(), HashKey(strings.TrimPrefix(authHeader, "Bearer ")))
			if err != nil {
				writeError(w, http.StatusInternalServerError, "")
				return
			}

			if apiKey == nil || !apiKey.Active {
				writeError(w, http.StatusUnauthorized, "invalid or inactive API key")
				return
			}

			if apiKey.ExpiresAt != nil && apiKey.ExpiresAt.Before(time.Now()) {
				writeError(w, http.StatusUnauthorized, "API key expired")
				return
			}

			user, err := users.GetUser(r.Context(), apiKey.Username)
			if errors.Is(err, domain.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "API key owner no longer exists")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "")
				return
			}

			ctx := WithUser(r.Context(), user)
			ctx = context.WithValue(ctx, CtxRole, apiKey.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(CtxRole).(domain.Role)
			if !ok {
				writeError(w, http.StatusForbidden, "role not found in context")
				return
			}

			if !slices.Contains(roles, role) {
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Instrument records request latency by method and status code.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.RequestDuration.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	})
}

package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/raflidev/go-fixmart/app/utils/sessions"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("PANIC on %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, `{"message":"internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware requires a logged-in session and puts the user on the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, role, ok := sessions.GetUser(r)
		if !ok {
			http.Error(w, `{"message":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, RoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, _ := r.Context().Value(RoleKey).(string); role != models.RoleAdmin {
			http.Error(w, `{"message":"admin access required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// VisitCountMiddleware bumps today's visit counter for public traffic.
// GetStatsByDate read-repairs the day's record first so the increment never
// hits a missing row. Counting runs after the response and never blocks it.
func VisitCountMiddleware(stats *services.StatsService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				now := time.Now()
				if _, err := stats.GetStatsByDate(ctx, now); err != nil {
					log.Printf("VisitCountMiddleware: failed to ensure stats record: %v", err)
					return
				}
				if err := stats.CountVisit(ctx, now); err != nil && !apperrors.IsNotFound(err) {
					log.Printf("VisitCountMiddleware: failed to count visit: %v", err)
				}
			}()
		})
	}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/config"
	"github.com/heartmarshall/vault-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Profile *ProfileHandler
	Vault   *VaultHandler
	Journal *JournalHandler
	Wrapped *WrappedHandler
	Spark   *SparkHandler
	Admin   *AdminHandler
}

// RouterDeps carries what NewRouter needs besides the handlers. A nil
// Limiter disables rate limiting.
type RouterDeps struct {
	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Logger    *slog.Logger
}

// NewRouter builds the HTTP routing tree.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	limit := func(perMinute int) middleware.Middleware {
		if deps.Limiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return deps.Limiter.Limit(perMinute)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens))

		r.Route("/auth", func(r chi.Router) {
			r.Use(limit(deps.RateLimit.AuthPerMinute))
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(limit(deps.RateLimit.APIPerMinute))

			r.Get("/me", h.Profile.Get)
			r.Patch("/me", h.Profile.Update)

			r.Route("/vaults", func(r chi.Router) {
				r.Get("/", h.Vault.List)
				r.Post("/", h.Vault.Create)
				r.Post("/join", h.Vault.Join)
				r.Get("/active", h.Vault.Active)
				r.Patch("/active", h.Vault.Update)
				r.Post("/active/end", h.Vault.End)
			})

			r.Route("/journal", func(r chi.Router) {
				r.Get("/today", h.Journal.Today)
				r.Get("/history", h.Journal.History)
				r.Post("/entries", h.Journal.Submit)
				r.Get("/entries/{entryID}", h.Journal.Entry)
				r.Patch("/entries/{entryID}", h.Journal.Edit)
			})

			r.Get("/wrapped", h.Wrapped.Get)
			r.Get("/wrapped/{year}", h.Wrapped.Get)

			r.Route("/sparks", func(r chi.Router) {
				r.Get("/categories", h.Spark.Categories)
				r.Get("/random", h.Spark.Random)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/prompts", h.Admin.ListPrompts)
				r.Post("/prompts", h.Admin.CreatePrompt)
				r.Patch("/prompts/{promptID}", h.Admin.UpdatePrompt)
				r.Put("/users/{userID}/role", h.Admin.SetUserRole)
				r.Get("/audit/{entityType}/{entityID}", h.Admin.History)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}

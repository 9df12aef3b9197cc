package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/domain"
	"crowdfund/internal/http/handlers"
	"crowdfund/internal/middleware"
)

// Options configures the cross-cutting middleware.
type Options struct {
	AllowedOrigins  []string
	DefaultLocale   string
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	authn := middleware.AuthJWT(app.Tokens)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Route("/auth", func(r chi.Router) {
			if opts.RateLimitPerMin > 0 {
				r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
			}
			r.Post("/signup", app.Signup)
			r.Post("/login", app.Login)
		})
		r.With(authn).Get("/me", app.Me)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", app.CampaignsList)
			r.Get("/{id}", app.CampaignsGet)
			r.With(authn, middleware.RequireRole(domain.UserRoleCreator)).Post("/", app.CampaignsCreate)
			r.With(authn).Put("/{id}", app.CampaignsUpdate)
			r.With(authn).Delete("/{id}", app.CampaignsDelete)
		})

		r.Route("/contributions", func(r chi.Router) {
			r.Get("/", app.ContributionsList)
			r.Group(func(r chi.Router) {
				r.Use(authn)
				r.Post("/", app.ContributionsCreate)
				r.Put("/{id}", app.ContributionsUpdate)
				r.Delete("/{id}", app.ContributionsDelete)
			})
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/campaigns", app.CampaignsByOwner)
			r.Get("/dashboard", app.CreatorDashboard)
		})

		r.Get("/investments/summary", app.InvestmentsSummary)
		r.Get("/investments/creators/{userID}", app.InvestmentsForCreator)
		r.Get("/marketplace", app.Marketplace)
		r.Get("/stats/summary", app.StatsSummary)
	})

	return r
}

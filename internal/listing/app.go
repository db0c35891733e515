package listing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"EstateCatalog/internal/auth"
	"EstateCatalog/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	JWT     *auth.TokenMaker
	Limiter *kit.IPRateLimiter
}

// NewHandler assembles the full HTTP surface: reads are open, mutating
// routes sit behind bearer auth and, when a limiter is supplied, rate
// limiting.
func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/listings", s.list)
	r.Get("/listings/sorted", s.sorted)
	r.Get("/listings/search", s.search)
	r.Get("/listings/{id}", s.get)

	r.Group(func(mr chi.Router) {
		mr.Use(AuthJWT(deps.JWT))
		if deps.Limiter != nil {
			mr.Use(deps.Limiter.Middleware)
		}
		mr.Post("/listings", s.create)
		mr.Delete("/listings/{id}", s.remove)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

// Package httpapi exposes the rate table and the VAT calculator over a JSON HTTP API.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/secure"

	"github.com/euvat/euvat/internal/application"
	"github.com/euvat/euvat/internal/domain"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger     *slog.Logger
	Config     domain.Config
	Calculator *application.CalculatorService
	Metrics    *Metrics
}

// NewRouter constructs the chi router serving the API.
func NewRouter(params RouterParams) http.Handler {
	metrics := params.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	h := &handler{
		logger:     params.Logger,
		calculator: params.Calculator,
		metrics:    metrics,
		validate:   validator.New(),
	}

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'",
	})

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(secureMiddleware.Handler)
	r.Use(metrics.Middleware)
	r.Use(requestLogger(params.Logger))

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		if params.Config.HTTP.RateLimit > 0 {
			r.Use(httprate.Limit(params.Config.HTTP.RateLimit, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		}
		r.Get("/rates", h.allRates)
		r.Get("/rates/standard", h.standardRates)
		r.Get("/rates/{code}", h.countryRates)
		r.Post("/tax/add", h.addTax)
		r.Post("/tax/subtract", h.subtractTax)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if logger == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rosterly/payrun-backend-go/internal/handler/http/middleware"
	"github.com/rosterly/payrun-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	payPeriodHandler PayPeriodHandler,
	payRunHandler PayRunHandler,
	rateHandler RateHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payrun-rosterly"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.RequireTenant)

			r.Route("/pay-periods", func(r chi.Router) {
				r.Post("/compute", payPeriodHandler.Compute)
			})

			r.Route("/pay-runs", func(r chi.Router) {
				r.Post("/", payRunHandler.Create)
				r.Get("/", payRunHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payRunHandler.Get)
					r.Delete("/", payRunHandler.Delete)
					r.Patch("/status", payRunHandler.TransitionStatus)
				})
			})

			r.Route("/pay-run-lines/{id}", func(r chi.Router) {
				r.Patch("/", payRunHandler.EditLine)
				r.Get("/changes", payRunHandler.ListLineChanges)
			})

			r.Route("/employees/{employeeId}/rates", func(r chi.Router) {
				r.Post("/", rateHandler.Create)
				r.Get("/", rateHandler.ListByEmployee)
			})

			r.Delete("/rates/{id}", rateHandler.Delete)
		})
	})
	return r
}

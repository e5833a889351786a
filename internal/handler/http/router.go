package http

import (
	"log/slog"
	"os"

	"github.com/agi040922/HR-Management-sub002/internal/handler/http/middleware"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	storeHandler StoreHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-management"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", storeHandler.List)
				r.Post("/", storeHandler.Create)

				r.Route("/{storeID}", func(r chi.Router) {
					r.Get("/", storeHandler.GetByID)
					r.Put("/", storeHandler.Update)
					r.Delete("/", storeHandler.Delete)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", employeeHandler.ListByStore)
						r.Post("/", employeeHandler.Create)
					})

					r.Route("/templates", func(r chi.Router) {
						r.Get("/", scheduleHandler.ListTemplates)
						r.Post("/", scheduleHandler.CreateTemplate)
					})

					r.Route("/exceptions", func(r chi.Router) {
						r.Get("/", scheduleHandler.ListExceptions)
						r.Post("/", scheduleHandler.CreateException)
					})

					r.Get("/shifts", scheduleHandler.ListShifts)
					r.Get("/payroll", payrollHandler.ComputeStore)
				})
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetByID)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Delete)
			})

			r.Route("/templates/{templateID}", func(r chi.Router) {
				r.Get("/", scheduleHandler.GetTemplate)
				r.Put("/", scheduleHandler.UpdateTemplate)
				r.Delete("/", scheduleHandler.DeleteTemplate)
			})

			r.Delete("/exceptions/{exceptionID}", scheduleHandler.DeleteException)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/summary", payrollHandler.ComputeSummary)

				r.Route("/records", func(r chi.Router) {
					r.Get("/", payrollHandler.ListRecords)
					r.Post("/", payrollHandler.SaveRecord)

					r.Route("/{recordID}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetRecord)
						r.Post("/confirm", payrollHandler.ConfirmRecord)
						r.Delete("/", payrollHandler.DeleteRecord)
					})
				})
			})
		})
	})

	return r
}

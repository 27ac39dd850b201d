package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/munidigital/papeletas-backend/internal/config"
	"github.com/munidigital/papeletas-backend/internal/handler/http/middleware"
	"github.com/munidigital/papeletas-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Papeleta     PapeletaHandler
	Estadisticas EstadisticasHandler
	Usuario      UsuarioHandler
	Empleado     EmpleadoHandler
	Reporte      ReporteHandler
	Catalogos    CatalogosHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "papeletas-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/papeletas", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireLectura)
					r.Get("/", h.Papeleta.List)
					r.Get("/{id}", h.Papeleta.GetByID)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRegistro)
					r.Post("/", h.Papeleta.Create)
					r.Put("/{id}", h.Papeleta.Update)
				})
			})

			// The empleado lookup only serves the registration form.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRegistro)
				r.Get("/empleados/{dni}", h.Empleado.GetByDNI)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireLectura)
				r.Get("/estadisticas", h.Estadisticas.Get)
				r.Get("/reportes/papeletas", h.Reporte.GetPapeletas)
				r.Get("/catalogos", h.Catalogos.Get)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdministrador)
				r.Get("/estadisticas/admin", h.Estadisticas.GetPanelAdmin)

				r.Route("/usuarios", func(r chi.Router) {
					r.Get("/", h.Usuario.List)
					r.Post("/", h.Usuario.Create)
					r.Put("/{id}", h.Usuario.Update)
					r.Delete("/{id}", h.Usuario.Delete)
				})
			})
		})
	})
	return r
}

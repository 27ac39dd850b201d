package main

import (
	"fmt"
	"net/http"

	"github.com/munidigital/papeletas-backend/internal/config"
	appHTTP "github.com/munidigital/papeletas-backend/internal/handler/http"
	"github.com/munidigital/papeletas-backend/internal/pkg/cron"
	"github.com/munidigital/papeletas-backend/internal/pkg/database"
	"github.com/munidigital/papeletas-backend/internal/pkg/jwt"
	"github.com/munidigital/papeletas-backend/internal/repository/postgresql"
	authService "github.com/munidigital/papeletas-backend/internal/service/auth"
	empleadoService "github.com/munidigital/papeletas-backend/internal/service/empleado"
	estadisticasService "github.com/munidigital/papeletas-backend/internal/service/estadisticas"
	papeletaService "github.com/munidigital/papeletas-backend/internal/service/papeleta"
	reporteService "github.com/munidigital/papeletas-backend/internal/service/reporte"
	usuarioService "github.com/munidigital/papeletas-backend/internal/service/usuario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	papeletaRepo := postgresql.NewPapeletaRepository(db)
	usuarioRepo := postgresql.NewUsuarioRepository(db)
	empleadoRepo := postgresql.NewEmpleadoRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(usuarioRepo, jwtService, refreshTokenRepo)
	papeletaSvc := papeletaService.NewPapeletaService(papeletaRepo)
	estadisticasSvc := estadisticasService.NewEstadisticasService(papeletaRepo, usuarioRepo)
	usuarioSvc := usuarioService.NewUsuarioService(usuarioRepo)
	empleadoSvc := empleadoService.NewEmpleadoService(empleadoRepo)
	reporteSvc := reporteService.NewReporteService(papeletaRepo)

	scheduler := cron.NewScheduler()
	cron.NewPapeletaJobs(papeletaRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		Papeleta:     appHTTP.NewPapeletaHandler(papeletaSvc),
		Estadisticas: appHTTP.NewEstadisticasHandler(estadisticasSvc),
		Usuario:      appHTTP.NewUsuarioHandler(usuarioSvc),
		Empleado:     appHTTP.NewEmpleadoHandler(empleadoSvc),
		Reporte:      appHTTP.NewReporteHandler(reporteSvc),
		Catalogos:    appHTTP.NewCatalogosHandler(),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

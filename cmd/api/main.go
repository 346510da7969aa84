package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/novacore-api/internal/application/auth"
	"github.com/jhoicas/novacore-api/internal/application/payroll"
	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/application/theme"
	"github.com/jhoicas/novacore-api/internal/application/usecase"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/novacore-api/internal/infrastructure/pdf"
	"github.com/jhoicas/novacore-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/novacore-api/internal/interfaces/http"
	"github.com/jhoicas/novacore-api/pkg/config"
	"github.com/jhoicas/novacore-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Data.Driver).
		Msg("iniciando aplicación")

	// Las dos representaciones de permisos (strings de autorización y matriz de UI)
	// conviven sin interactuar; detectar la deriva al arrancar.
	if err := rbac.VerifyMatrix(); err != nil {
		log.Warn().Err(err).Msg("la matriz de accesos de la UI promete más de lo que autorizan los roles")
	}

	ctx := context.Background()

	var (
		userRepo     repository.UserRepository
		companyRepo  repository.CompanyRepository
		employeeRepo repository.EmployeeRepository
	)
	switch cfg.Data.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		companyRepo = postgres.NewCompanyRepository(pool)
		employeeRepo = postgres.NewEmployeeRepository(pool)
	default:
		repos := memory.NewRepos(memory.DemoFixture())
		userRepo = repos.Users
		companyRepo = repos.Companies
		employeeRepo = repos.Employees
		log.Info().Msg("driver memory: datos demo cargados")
	}

	directory := session.Directory{Users: userRepo, Companies: companyRepo}
	authUC := auth.NewAuthUseCase(directory, session.BcryptVerifier{}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	moduleSvc := usecase.NewModuleService(companyRepo)
	payslipUC := payroll.NewPayslipUseCase(employeeRepo, companyRepo, infrapdf.NewMarotoPayslipGenerator())
	themeStore := theme.NewStore(cfg.Theme)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El JSON se genera con
	// `swag init -g cmd/api/main.go -o docs`; si no existe se omite el middleware.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "NovaCore API",
		}))
	} else {
		log.Debug().Msg("docs/swagger.json no encontrado; Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		CompanyUC:  companyUC,
		PayslipUC:  payslipUC,
		Modules:    moduleSvc,
		Theme:      themeStore,
		Directory:  directory,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

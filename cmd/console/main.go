// console ejercita el ciclo de vida completo de la sesión contra el driver de datos
// configurado: restaura el marcador durable, opcionalmente inicia o cierra sesión y
// reporta el estado resultante. Útil como smoke de extremo a extremo sin levantar la API.
//
// Uso:
//
//	go run ./cmd/console                                  # solo restaurar (initializeAuth)
//	go run ./cmd/console -email admin@techcorp.com -password demo1234
//	go run ./cmd/console -logout
//
// Con DATA_DRIVER=postgres el marcador persiste en la tabla session_markers
// (ranura -slot, last writer wins); con memory la sesión vive solo en el proceso.
package main

import (
	"context"
	"flag"

	"github.com/jhoicas/novacore-api/internal/application/session"
	"github.com/jhoicas/novacore-api/internal/domain/rbac"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
	"github.com/jhoicas/novacore-api/internal/infrastructure/memory"
	"github.com/jhoicas/novacore-api/internal/infrastructure/postgres"
	"github.com/jhoicas/novacore-api/pkg/config"
	"github.com/jhoicas/novacore-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email para iniciar sesión (vacío: solo restaurar)")
	password := flag.String("password", "", "password del usuario")
	logout := flag.Bool("logout", false, "cerrar la sesión al final")
	slot := flag.String("slot", "console", "ranura del marcador durable (driver postgres)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "debug"})
	ctx := context.Background()

	var (
		users     repository.UserRepository
		companies repository.CompanyRepository
		employees repository.EmployeeRepository
		markers   repository.SessionMarkerStore
	)
	switch cfg.Data.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		users = postgres.NewUserRepository(pool)
		companies = postgres.NewCompanyRepository(pool)
		employees = postgres.NewEmployeeRepository(pool)
		markers = postgres.NewMarkerRepository(pool, *slot)
	default:
		repos := memory.NewRepos(memory.DemoFixture())
		users = repos.Users
		companies = repos.Companies
		employees = repos.Employees
		markers = repos.Markers
		log.Info().Msg("driver memory: datos demo cargados")
	}

	store := session.NewStore(session.StoreDeps{
		Directory: session.Directory{Users: users, Companies: companies},
		Employees: employees,
		Markers:   markers,
		Logger:    log,
	})

	store.InitializeAuth(ctx)
	log.Info().Str("state", store.State().String()).Msg("sesión restaurada desde el marcador")

	if *email != "" {
		if err := store.Login(ctx, *email, *password); err != nil {
			log.Fatal().Err(err).Msg("login")
		}
	}

	if store.IsAuthenticated() {
		user := store.CurrentUser()
		company := store.CurrentCompany()
		list, err := store.CompanyEmployees(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("listar expedientes del tenant")
		}
		log.Info().
			Str("email", user.Email).
			Str("role", user.Role).
			Str("company", company.Name).
			Int("employees", len(list)).
			Bool("settings_write", store.HasPermission(rbac.PermSettingsWrite)).
			Msg("sesión activa")
	}

	if *logout {
		store.Logout(ctx)
		log.Info().Str("state", store.State().String()).Msg("sesión cerrada")
	}
}

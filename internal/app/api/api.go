// Local HTTP surface over the journal's data layer.
//
// POST /user/register       # Register (public)
// POST /user/login          # Log in (public)
// GET  /api/v1/records      # Visible records (auth)
// POST /api/v1/records      # Upsert a record (auth)
// GET  /api/v1/records/{id} # One record (auth)
// DELETE /api/v1/records/{id} # Delete (auth)
// GET/POST/DELETE /api/v1/tickets # Ticket stubs (auth)
// GET/POST /api/v1/friends  # Friend graph (auth)
// GET/POST /api/v1/backup   # Export / restore (auth)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	backupAPI "darak/internal/app/api/http/backup"
	healthAPI "darak/internal/app/api/http/health"
	"darak/internal/app/api/http/middleware"
	"darak/internal/app/api/http/middleware/auth"
	"darak/internal/app/api/http/middleware/logger"
	recordAPI "darak/internal/app/api/http/record"
	ticketAPI "darak/internal/app/api/http/ticket"
	userAPI "darak/internal/app/api/http/user"
	"darak/internal/app/journal"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Record *recordAPI.Handler
	Ticket *ticketAPI.Handler
	Backup *backupAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(app *journal.App, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Darak API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(app, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Record.SetupRoutes(API)
	h.Ticket.SetupRoutes(API)
	h.Backup.SetupRoutes(API)

	return mux
}

func handlers(app *journal.App, log *slog.Logger) *Handlers {
	authMW := auth.New(app.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(app.Storage, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(app.Users, app.Sessions, log, public, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(app.Records, app.Users, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	ticketHandler := ticketAPI.NewHandler(app.Tickets, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	backupHandler := backupAPI.NewHandler(app.Backup, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Record: recordHandler,
		Ticket: ticketHandler,
		Backup: backupHandler,
	}
}

// Package journal wires the journal's services together for the CLI and the
// local API: storage, the record/ticket/preference stores, the user
// directory and the on-device session.
package journal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"darak/internal/config"
	"darak/internal/domain/backup"
	"darak/internal/domain/legacy"
	"darak/internal/domain/prefs"
	"darak/internal/domain/record"
	"darak/internal/domain/session"
	"darak/internal/domain/ticket"
	"darak/internal/domain/user"
	"darak/internal/infrastructure/storage/sqlite"
)

type App struct {
	Config *config.Config
	Log    *slog.Logger

	Storage  *sqlite.Storage
	Records  *record.Service
	Tickets  *ticket.Service
	Users    *user.Service
	Sessions *session.Service
	Prefs    *prefs.Service
	Backup   *backup.Service

	migrator *legacy.Migrator
}

// New builds the full service graph. Storage starts initializing in the
// background; nothing blocks until the first operation.
func New(cfg *config.Config, log *slog.Logger) *App {
	storage := sqlite.Open(cfg.DBPath, log)

	recordRepo := sqlite.NewRecordRepository(storage, log)
	ticketRepo := sqlite.NewTicketRepository(storage, log)
	userRepo := sqlite.NewUserRepository(storage, log)
	sessionRepo := sqlite.NewSessionRepository(storage, log)
	kvRepo := sqlite.NewKVRepository(storage, log)
	legacyRepo := sqlite.NewLegacyRepository(storage, log)

	recordService := record.NewService(recordRepo, log)
	ticketService := ticket.NewService(ticketRepo, log)
	userService := user.NewService(userRepo, log, cfg.BcryptCost)
	sessionService := session.NewService(sessionRepo, log)
	prefsService := prefs.NewService(kvRepo, log)
	backupService := backup.NewService(recordService, ticketService, prefsService, log)

	return &App{
		Config:   cfg,
		Log:      log,
		Storage:  storage,
		Records:  recordService,
		Tickets:  ticketService,
		Users:    userService,
		Sessions: sessionService,
		Prefs:    prefsService,
		Backup:   backupService,
		migrator: legacy.NewMigrator(legacyRepo, log),
	}
}

// Init waits for storage and imports any pending legacy payload. When the
// environment cannot provide persistence at all the app keeps running in a
// degraded mode: reads see an empty store and every write surfaces the
// storage error.
func (a *App) Init(ctx context.Context) error {
	if _, err := a.Storage.Await(ctx); err != nil {
		if errors.Is(err, sqlite.ErrUnavailable) {
			a.Log.Warn("running without persistence", "error", err)
			return nil
		}
		return err
	}

	n, err := a.migrator.Migrate(ctx)
	if err != nil {
		// A malformed blob is reported but never blocks startup; the
		// payload stays in place for manual recovery.
		if errors.Is(err, legacy.ErrParse) {
			a.Log.Error("legacy payload could not be imported", "error", err)
			return nil
		}
		return fmt.Errorf("legacy migration: %w", err)
	}
	if n > 0 {
		a.Log.Info("imported legacy records", "count", n)
	}

	return nil
}

// Degraded reports whether storage failed to initialize.
func (a *App) Degraded() bool {
	return a.Storage.Err() != nil
}

func (a *App) Close() error {
	return a.Storage.Close()
}

// ==================== Session ====================

// Token returns the saved session token, or "" when nobody is logged in.
func (a *App) Token() string {
	data, err := os.ReadFile(a.Config.TokenPath)
	if err != nil {
		return ""
	}
	return string(data)
}

func (a *App) saveToken(token string) error {
	if err := os.WriteFile(a.Config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (a *App) clearToken() error {
	if err := os.Remove(a.Config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// CurrentUser resolves the saved token to an account. Returns
// user.ErrNotAuthenticated when no valid session exists.
func (a *App) CurrentUser(ctx context.Context) (*user.User, error) {
	token := a.Token()
	if token == "" {
		return nil, user.ErrNotAuthenticated
	}

	userID, err := a.Sessions.Validate(ctx, token)
	if err != nil {
		return nil, user.ErrNotAuthenticated
	}

	u, err := a.Users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	return u, nil
}

// Viewer is CurrentUser reshaped for the visibility filter; an anonymous
// device yields a nil viewer.
func (a *App) Viewer(ctx context.Context) *record.Viewer {
	u, err := a.CurrentUser(ctx)
	if err != nil {
		return nil
	}
	return &record.Viewer{ID: u.ID, Friends: u.Friends}
}

// Register creates the account and logs it in, mirroring the signup flow
// where a fresh account lands directly in the app.
func (a *App) Register(ctx context.Context, id, password string) (*user.User, error) {
	u, err := a.Users.Register(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if err := a.startSession(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *App) Login(ctx context.Context, id, password string) (*user.User, error) {
	u, err := a.Users.Authenticate(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if err := a.startSession(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *App) startSession(ctx context.Context, userID string) error {
	token, err := a.Sessions.Create(ctx, userID)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if err := a.saveToken(token); err != nil {
		return err
	}

	a.Log.Info("session started", "user_id", userID)
	return nil
}

// Logout drops the session row and the token file. Logging out while not
// logged in succeeds.
func (a *App) Logout(ctx context.Context) error {
	token := a.Token()
	if token != "" {
		if err := a.Sessions.Destroy(ctx, token); err != nil {
			a.Log.Warn("failed to destroy session", "error", err)
		}
	}
	return a.clearToken()
}

// ==================== Records ====================

// VisibleRecords refreshes the record snapshot for the current viewer. In
// degraded mode it returns the empty set rather than failing the caller.
func (a *App) VisibleRecords(ctx context.Context) ([]record.Record, error) {
	records, err := a.Records.Refresh(ctx, a.Viewer(ctx))
	if err != nil {
		if errors.Is(err, sqlite.ErrUnavailable) {
			return []record.Record{}, nil
		}
		return nil, err
	}
	return records, nil
}

// SaveRecord writes through the record store with the current viewer, so a
// new record is claimed by whoever is logged in.
func (a *App) SaveRecord(ctx context.Context, rec *record.Record) (int64, error) {
	return a.Records.Save(ctx, rec, a.Viewer(ctx))
}

// ==================== Backup ====================

func (a *App) Export(ctx context.Context) (*backup.Bundle, error) {
	return a.Backup.Export(ctx)
}

func (a *App) Import(ctx context.Context, data []byte) (*backup.Bundle, error) {
	b, err := backup.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := a.Backup.Import(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Recover restores a bundle flagged as a recovery payload. The flow is the
// same as Import; the flag only marks where the data came from.
func (a *App) Recover(ctx context.Context, data []byte) (*backup.Bundle, error) {
	b, err := backup.Decode(data)
	if err != nil {
		return nil, err
	}
	b.IsRecovery = true
	if err := a.Backup.Import(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

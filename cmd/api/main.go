package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/envstruct"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/history"
	"github.com/TedTes/trakfit/internal/logging"
	"github.com/TedTes/trakfit/internal/profile"
	"github.com/TedTes/trakfit/internal/sqlite"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	catalog        *catalog.Catalog
	engine         *coach.Engine
	generator      *coach.Generator
	enricher       *coach.NoteEnricher
	profiles       *profile.Service
	history        *history.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"TRAKFIT_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"TRAKFIT_SQLITE_URL" envDefault:"./trakfit.sqlite3"`
	// OpenAIAPIKey enables AI rewriting of coaching notes. Leave empty to serve the built-in notes as-is.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// MealLogRetentionMonths is how many months of meal log entries the nightly maintenance job keeps.
	MealLogRetentionMonths int `env:"TRAKFIT_MEAL_LOG_RETENTION_MONTHS" envDefault:"12"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	// Missing .env is fine, the environment may be configured directly.
	_ = godotenv.Load()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	c, err := catalog.New()
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}

	sessionManager := initializeSessionManager(db)
	historyService := history.NewService(db, c, logger)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		catalog:        c,
		engine:         coach.NewEngine(c, coach.UUIDGenerator{}, time.Now),
		generator:      coach.NewGenerator(c, coach.UUIDGenerator{}),
		enricher:       coach.NewNoteEnricher(cfg.OpenAIAPIKey, logger),
		profiles:       profile.NewService(profile.NewRepository(db), logger),
		history:        historyService,
	}

	scheduler, err := startMaintenanceJobs(ctx, logger, db, historyService, cfg.MealLogRetentionMonths)
	if err != nil {
		return errors.Wrap(err, "start maintenance jobs")
	}
	defer scheduler.Stop()

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

// startMaintenanceJobs schedules the nightly database optimization and meal
// log pruning. The returned scheduler must be stopped on shutdown.
func startMaintenanceJobs(
	ctx context.Context,
	logger *slog.Logger,
	db *sqlite.Database,
	historyService *history.Service,
	retentionMonths int,
) (*cron.Cron, error) {
	scheduler := cron.New()
	err := scheduler.AddFunc("0 0 3 * * *", func() {
		if err := db.Optimize(ctx); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "database optimize failed", errors.SlogError(err))
		}
		cutoff := time.Now().AddDate(0, -retentionMonths, 0)
		pruned, err := historyService.PruneMealLog(ctx, cutoff)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "meal log prune failed", errors.SlogError(err))
			return
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "nightly maintenance completed", slog.Int64("meal_entries_pruned", pruned))
	})
	if err != nil {
		return nil, errors.Wrap(err, "schedule nightly maintenance")
	}
	scheduler.Start()
	return scheduler, nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}

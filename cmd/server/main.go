package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/config"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/handler"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/middleware"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/repository/memory"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/repository/postgres"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/repository/redis"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/seed"
	consoleService "github.com/seanleeopenlaw/DelambeAdmin/internal/service/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/store"
)

// repositories is the set of backends chosen by STATE_BACKEND
type repositories struct {
	state  consoleRepo.StateRepository
	drafts consoleRepo.DraftRepository
	files  consoleRepo.FileVersionRepository
	pinger handler.Pinger
	close  func()
}

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser := config.NewLogger(cfg)
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"state_backend", cfg.StateBackend,
		"table_prefix", cfg.TablePrefix,
	)

	ctx := context.Background()

	fixture, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load seed fixture: %v", err)
	}

	repos, err := openRepositories(ctx, cfg, fixture, logger)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", cfg.StateBackend, err)
	}
	defer repos.close()

	// Restore the persisted console state, falling back to the fixture tree
	fallback := store.DefaultState()
	if cfg.SeedMockData {
		fallback = fixture.InitialState()
	}
	initial, restored, err := store.Restore(ctx, repos.state, cfg.StateKey, fallback)
	if err != nil {
		logger.Warn("stored console state unreadable, starting fresh", "error", err)
	}
	logger.Info("console state loaded", "restored", restored, "roots", len(initial.TreeData))

	consoleStore := store.New(initial)
	persister := store.NewPersister(repos.state, cfg.StateKey, logger)
	detach := persister.Attach(consoleStore)
	defer detach()

	// Services
	versionService := consoleService.NewVersionService(repos.files, repos.drafts, logger)
	treeService := consoleService.NewTreeService(consoleStore, versionService, logger)
	levelResolver := consoleService.NewLevelResolver(consoleStore, repos.drafts, logger)

	logger.Info("services initialized")

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Handlers{
		Health:  handler.NewHealthHandler(cfg.StateBackend, repos.pinger, logger),
		Tree:    handler.NewTreeHandler(treeService, logger),
		Level:   handler.NewLevelHandler(levelResolver, treeService, logger),
		Version: handler.NewVersionHandler(versionService, logger),
	})

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	// Final write so the last state survives even if a save was skipped
	if _, err := persister.Save(shutdownCtx, consoleStore.Snapshot()); err != nil {
		logger.Error("final state save failed", "error", err)
	}
}

// openRepositories wires the configured backend. Drafts and files live in
// postgres when it is the backend and in memory otherwise.
func openRepositories(ctx context.Context, cfg *config.Config, fixture *seed.Fixture, logger *slog.Logger) (*repositories, error) {
	switch cfg.StateBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, fixture, logger)

	case config.BackendRedis:
		stateRepo, err := redis.NewStateRepository(cfg.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		return &repositories{
			state:  stateRepo,
			drafts: memory.NewDraftRepository(fixture.Drafts),
			files:  memory.NewFileVersionRepository(fixture.Files),
			pinger: stateRepo,
			close:  func() { _ = stateRepo.Close() },
		}, nil

	case config.BackendMemory:
		return &repositories{
			state:  memory.NewStateRepository(),
			drafts: memory.NewDraftRepository(fixture.Drafts),
			files:  memory.NewFileVersionRepository(fixture.Files),
			close:  func() {},
		}, nil

	default:
		return nil, errors.New("unknown STATE_BACKEND " + cfg.StateBackend)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, fixture *seed.Fixture, logger *slog.Logger) (*repositories, error) {
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("database connected", "tables", tables.All())

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	txManager := postgres.NewTransactionManager(pool, logger)
	draftRepo := postgres.NewDraftRepository(repoConfig)
	fileRepo := postgres.NewFileVersionRepository(repoConfig, txManager)

	if cfg.SeedMockData {
		existing, err := draftRepo.List(ctx)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if len(existing) == 0 {
			if err := fixture.Install(ctx, draftRepo, fileRepo); err != nil {
				pool.Close()
				return nil, err
			}
			logger.Info("draft registry seeded", "drafts", len(fixture.Drafts), "files", len(fixture.Files))
		}
	}

	return &repositories{
		state:  postgres.NewStateRepository(repoConfig),
		drafts: draftRepo,
		files:  fileRepo,
		pinger: pool,
		close:  pool.Close,
	}, nil
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/config"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/repository/postgres"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/seed"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/store"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Clear drafts, files and stored console state (keep schema)")
	resetState := flag.Bool("reset-state", false, "Overwrite the stored console state with the fixture tree")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData || *resetState) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables, --clear-data or --reset-state) in production environment")
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	logger, logCloser := config.NewLogger(cfg)
	defer logCloser.Close()

	switch {
	case *clearData:
		log.Printf("🧹 Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	case *schemaOnly:
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	default:
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		if err := postgres.ClearData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	fixture, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	txManager := postgres.NewTransactionManager(pool, logger)
	draftRepo := postgres.NewDraftRepository(repoConfig)
	fileRepo := postgres.NewFileVersionRepository(repoConfig, txManager)
	stateRepo := postgres.NewStateRepository(repoConfig)

	log.Printf("📝 Seeding %d drafts with %d file versions...", len(fixture.Drafts), len(fixture.Files))
	if err := fixture.Install(ctx, draftRepo, fileRepo); err != nil {
		log.Fatalf("Failed to seed drafts: %v", err)
	}

	existing, err := stateRepo.Load(ctx, cfg.StateKey)
	if err != nil {
		log.Printf("Warning: could not read stored console state: %v", err)
	}
	if existing == nil || *resetState {
		persister := store.NewPersister(stateRepo, cfg.StateKey, logger)
		if _, err := persister.Save(ctx, fixture.InitialState()); err != nil {
			log.Fatalf("Failed to store console state: %v", err)
		}
		log.Printf("✅ Stored console state under %q", cfg.StateKey)
	} else {
		log.Printf("ℹ️  Keeping existing console state under %q (use --reset-state to overwrite)", cfg.StateKey)
	}

	log.Println("🎉 Seeding complete!")
}

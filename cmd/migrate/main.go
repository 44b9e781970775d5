package main

import (
	"log"

	"careerforge/internal/config"
	"careerforge/internal/database"
	"careerforge/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	dsn := cfg.GetDSN()
	if dsn == "" {
		log.Fatal("No database configured: set db.host in config or the DB_HOST environment variable")
	}

	if err := database.RunMigrations(dsn, "database/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	l.Info("Migrations applied successfully")
}

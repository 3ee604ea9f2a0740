package main

import (
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/notetakerhq/meeting-notes-api/internal/infrastructure/database"
	"github.com/notetakerhq/meeting-notes-api/pkg/config"
)

// Applies SQL migrations from migrations/. Pass "down" to roll back the
// most recent migration.
func main() {
	direction := migrate.Up
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	migrations := &migrate.FileMigrationSource{
		Dir: "migrations",
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	var n int
	if direction == migrate.Down {
		log.Println("🔄 Rolling back the most recent migration...")
		n, err = migrate.ExecMax(sqlDB, "postgres", migrations, migrate.Down, 1)
	} else {
		log.Println("🔄 Applying migrations from migrations/ directory...")
		n, err = migrate.Exec(sqlDB, "postgres", migrations, migrate.Up)
	}
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
}

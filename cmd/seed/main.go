// Command main seeds the database with demo users and gratitude entries.
package main

import (
	"flag"
	"log"

	"gratitude/internal/config"
	"gratitude/internal/database"
	"gratitude/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "number of demo users to create")
	entries := flag.Int("entries", 20, "entries per user")
	maxDays := flag.Int("max-days", 90, "spread entry dates over the past N days")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext demo passwords (faster)")
	dryRun := flag.Bool("dry-run", false, "log what would be created without writing")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		Users:          *users,
		EntriesPerUser: *entries,
		MaxDays:        *maxDays,
		SkipBcrypt:     *skipBcrypt,
		DryRun:         *dryRun,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

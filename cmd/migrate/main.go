// Command migrate applies versioned SQL migrations for Libris.
package main

import (
	"context"
	"flag"
	"log"

	"libris/internal/config"
	"libris/internal/database"
)

func main() {
	rollback := flag.Int("rollback", 0, "roll back the migration with the given version")
	status := flag.Bool("status", false, "print applied and pending migrations without changing anything")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()

	switch {
	case *status:
		store := database.NewMigrationStore(db)
		applied, err := store.GetAppliedMigrations(ctx)
		if err != nil {
			log.Fatalf("Failed to read migration log: %v", err)
		}
		appliedSet := make(map[int]bool, len(applied))
		for _, v := range applied {
			appliedSet[v] = true
		}
		for _, m := range database.GetMigrations() {
			state := "pending"
			if appliedSet[m.Version] {
				state = "applied"
			}
			log.Printf("%s  %s", m.String(), state)
		}
	case *rollback > 0:
		if err := database.RollbackMigration(ctx, db, *rollback); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Printf("Rolled back migration %d", *rollback)
	default:
		if err := database.RunMigrations(ctx, db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	}
}

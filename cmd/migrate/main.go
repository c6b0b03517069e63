package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nareldigital/narel/internal/db"
)

func main() {
	_ = godotenv.Load()

	action := flag.String("action", "up", "migration action: up, down, or version")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -action=down")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	switch *action {
	case "up":
		if err := db.Migrate(databaseURL); err != nil {
			fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migrations applied")
	case "down":
		if err := db.MigrateDown(databaseURL, *steps); err != nil {
			fmt.Fprintf(os.Stderr, "rollback failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("rolled back %d migration(s)\n", *steps)
	case "version":
		version, dirty, err := db.MigrationVersion(databaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read version: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "unknown action: %s\n", *action)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"quickchat/config"
	"quickchat/pkg/database"
)

const usage = `
quickchat - Database CLI Tool (postgres backend)

Usage:
  migrate [command]

Commands:
  up          Apply the embedded schema migrations
  status      Show database connection status
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	switch flag.Arg(0) {
	case "up":
		if err := database.ApplyMigrations(ctx, pool); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	case "status":
		stat := pool.Stat()
		log.Printf("Connected to %s:%s/%s (total=%d idle=%d)",
			cfg.DBHost, cfg.DBPort, cfg.DBName, stat.TotalConns(), stat.IdleConns())
	default:
		flag.Usage()
		os.Exit(1)
	}
}

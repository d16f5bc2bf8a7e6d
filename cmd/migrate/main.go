package main

import (
	"github.com/adammwaniki/SendIT/internal/config" // Custom import path (Config)
	"github.com/adammwaniki/SendIT/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Run schema auto-migration
}

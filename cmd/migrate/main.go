package main

import (
	"addressbook/internal/config"
	"addressbook/internal/db"
)

// Entry point for schema migration
func main() {
	cfg := config.LoadConfig()
	db.Migrate(cfg.DSN())
}

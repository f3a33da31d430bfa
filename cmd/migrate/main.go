package main

import (
	"log"

	"nko-content-assistant/internal/config"
	"nko-content-assistant/internal/model"
	"nko-content-assistant/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Organization{},
		&model.Post{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete: nko_info, posts")
}

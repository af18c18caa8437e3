package main

import (
	"log"

	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required for migration")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&entity.Product{}, &entity.QualificationRecord{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration completed")
}

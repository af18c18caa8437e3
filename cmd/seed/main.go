// Seeds the products table from the JSON catalog so deployments can switch
// from the file provider to the database provider.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/database"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required for seeding")
	}

	products, err := catalog.NewJSONProvider(cfg.Data.CatalogPath).LoadProducts(context.Background())
	if err != nil {
		log.Fatalf("Unable to load catalog file: %v", err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	now := time.Now()
	for _, p := range products {
		row := entity.Product{
			Id:                p.Id,
			Category:          p.Category,
			Tags:              toJSON(p.Tags),
			Contraindications: toJSON(p.Contraindications),
			Metadata:          toJSON(p.Metadata),
			Price:             p.Price,
			Currency:          p.Currency,
			Name:              toJSON(p.Name),
			Description:       toJSON(p.Description),
			Usage:             toJSON(p.Usage),
			Benefits:          toJSON(p.Benefits),
			CreatedAt:         now,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			log.Fatalf("Seeding product %s failed: %v", p.Id, err)
		}
	}
	log.Printf("Seeded %d products", len(products))
}

func toJSON(v interface{}) datatypes.JSON {
	raw, _ := json.Marshal(v)
	return datatypes.JSON(raw)
}

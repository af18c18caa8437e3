package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Product is the catalog row shape for the Postgres-backed catalog provider.
// Tag sets and localized text live in JSON columns; the offline catalog
// tooling owns writes, the service only reads at startup.
type Product struct {
	Id                string         `gorm:"primaryKey;type:varchar(64)"`
	Category          string         `gorm:"type:varchar(32);index"`
	Tags              datatypes.JSON `gorm:"type:jsonb"`
	Contraindications datatypes.JSON `gorm:"type:jsonb"`
	Metadata          datatypes.JSON `gorm:"type:jsonb"`
	Price             float64
	Currency          string         `gorm:"type:varchar(8)"`
	Name              datatypes.JSON `gorm:"type:jsonb"`
	Description       datatypes.JSON `gorm:"type:jsonb"`
	Usage             datatypes.JSON `gorm:"type:jsonb"`
	Benefits          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

func (Product) TableName() string {
	return "products"
}

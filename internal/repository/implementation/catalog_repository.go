package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/pkg/catalog"

	"gorm.io/gorm"
)

// GormCatalogProvider loads the product catalog from Postgres. It satisfies
// catalog.Provider as an alternative to the JSON-file provider.
type GormCatalogProvider struct {
	db *gorm.DB
}

func NewGormCatalogProvider(db *gorm.DB) *GormCatalogProvider {
	return &GormCatalogProvider{db: db}
}

var _ catalog.Provider = (*GormCatalogProvider)(nil)

func (p *GormCatalogProvider) LoadProducts(ctx context.Context) ([]catalog.Product, error) {
	var rows []entity.Product
	if err := p.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		product, err := toDomainProduct(row)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", row.Id, err)
		}
		products = append(products, product)
	}
	return products, nil
}

func toDomainProduct(row entity.Product) (catalog.Product, error) {
	p := catalog.Product{
		Id:       row.Id,
		Category: row.Category,
		Price:    row.Price,
		Currency: row.Currency,
	}

	fields := []struct {
		raw  []byte
		dest interface{}
	}{
		{row.Tags, &p.Tags},
		{row.Contraindications, &p.Contraindications},
		{row.Metadata, &p.Metadata},
		{row.Name, &p.Name},
		{row.Description, &p.Description},
		{row.Usage, &p.Usage},
		{row.Benefits, &p.Benefits},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dest); err != nil {
			return catalog.Product{}, err
		}
	}
	return p, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// JSONProvider loads the catalog from a static JSON document on disk.
// This is the default provider; catalog edits happen offline, not at runtime.
type JSONProvider struct {
	Path string
}

func NewJSONProvider(path string) *JSONProvider {
	return &JSONProvider{Path: path}
}

type catalogFile struct {
	Products []Product `json:"products"`
}

func (p *JSONProvider) LoadProducts(_ context.Context) ([]Product, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", p.Path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", p.Path, err)
	}
	return file.Products, nil
}

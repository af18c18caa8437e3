package questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// JSONProvider loads question definitions from a static JSON document.
type JSONProvider struct {
	Path string
}

func NewJSONProvider(path string) *JSONProvider {
	return &JSONProvider{Path: path}
}

type questionFile struct {
	Categories map[string][]Step `json:"categories"`
}

func (p *JSONProvider) LoadCategories(_ context.Context) (map[string][]Step, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read question file %s: %w", p.Path, err)
	}

	var file questionFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse question file %s: %w", p.Path, err)
	}
	return file.Categories, nil
}

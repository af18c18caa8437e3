package catalog

// LocalizedText maps a language code ("en", "id", ...) to display text.
// The matching logic never inspects it; it is payload for the delivery layer.
type LocalizedText map[string]string

// Resolve returns the text for lang, falling back to fallback when missing.
func (t LocalizedText) Resolve(lang, fallback string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[fallback]
}

// Metadata holds the fixed per-product flags used as scoring bonuses.
// These are never hard filters.
type Metadata struct {
	HumidityResistant bool   `json:"humidity_resistant"`
	SiliconeFree      bool   `json:"silicone_free"`
	WeightClass       string `json:"weight_class"` // "light" | "medium" | "rich"
}

// Product is a single catalog entry. Loaded once at startup, immutable after.
type Product struct {
	Id                string        `json:"id"`
	Category          string        `json:"category"`
	Tags              []string      `json:"tags"`
	Contraindications []string      `json:"contraindications"`
	Metadata          Metadata      `json:"metadata"`
	Price             float64       `json:"price"`
	Currency          string        `json:"currency"`
	Name              LocalizedText `json:"name"`
	Description       LocalizedText `json:"description"`
	Usage             LocalizedText `json:"usage"`
	Benefits          LocalizedText `json:"benefits"`
}
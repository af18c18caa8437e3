package questionbank

import "beauty-advisor-be/pkg/catalog"

// Phase determines how a step's answer is interpreted by the matching engine.
const (
	PhaseContext        = "context"         // answers feed user contraindications
	PhasePrimaryProblem = "primary-problem" // answers feed required tags (hard constraint)
	PhaseGoals          = "goals"           // answers feed desired tags (soft preference)
)

// Step types.
const (
	TypeSingleSelect = "single-select"
	TypeMultiSelect  = "multi-select"
	TypeNumericRange = "numeric-range"
)

// Option is one selectable answer. Only the effect set matching the owning
// step's phase is ever read; effects on the "wrong" phase are inert data.
type Option struct {
	Id                string                `json:"id"`
	Label             catalog.LocalizedText `json:"label"`
	Contraindications []string              `json:"contraindications,omitempty"`
	RequiredTags      []string              `json:"required_tags,omitempty"`
	BenefitTags       []string              `json:"benefit_tags,omitempty"`
}

// NumericConfig carries the bounds for numeric-range steps.
type NumericConfig struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit,omitempty"`
}

// Step is one question in a category's qualification flow.
// Steps are strictly ordered 1..N with no gaps; the phase assignment is
// static for the process lifetime.
type Step struct {
	Id       int                   `json:"id"`
	Phase    string                `json:"phase"`
	Type     string                `json:"type"`
	Question catalog.LocalizedText `json:"question"`
	Options  []Option              `json:"options"`
	Numeric  *NumericConfig        `json:"numeric,omitempty"`
}

// FindOption returns the option with the given id, or nil when the id is
// unknown. Unknown ids are a permissive no-op for the extractors.
func (s *Step) FindOption(id string) *Option {
	for i := range s.Options {
		if s.Options[i].Id == id {
			return &s.Options[i]
		}
	}
	return nil
}

package questionbank

import (
	"context"
	"fmt"

	"beauty-advisor-be/internal/apperror"
)

// Provider supplies the question definitions at startup.
type Provider interface {
	LoadCategories(ctx context.Context) (map[string][]Step, error)
}

// LocalizedOption is an option projected into one language.
type LocalizedOption struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// LocalizedQuestion is the step payload handed to the delivery layer.
type LocalizedQuestion struct {
	Step       int               `json:"step"`
	TotalSteps int               `json:"total_steps"`
	Phase      string            `json:"phase"`
	Type       string            `json:"type"`
	Question   string            `json:"question"`
	Options    []LocalizedOption `json:"options"`
	Numeric    *NumericConfig    `json:"numeric,omitempty"`
}

// Bank is the read-only question bank. Steps are indexed per category and
// per phase at load time; safe for concurrent reads.
type Bank struct {
	categories   map[string][]Step
	stepsByPhase map[string]map[string][]int // category -> phase -> step ids
	defaultLang  string
}

// NewBank loads the question definitions once and validates their ordering.
func NewBank(ctx context.Context, provider Provider, defaultLang string) (*Bank, error) {
	categories, err := provider.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	b := &Bank{
		categories:   categories,
		stepsByPhase: make(map[string]map[string][]int),
		defaultLang:  defaultLang,
	}

	for category, steps := range categories {
		phases := map[string][]int{}
		for i, step := range steps {
			if step.Id != i+1 {
				return nil, fmt.Errorf("question bank %s: step ids must be 1..N without gaps, got %d at position %d", category, step.Id, i)
			}
			phases[step.Phase] = append(phases[step.Phase], step.Id)
		}
		b.stepsByPhase[category] = phases
	}
	return b, nil
}

// TotalSteps returns the step count for a category, 0 when unknown.
func (b *Bank) TotalSteps(category string) int {
	return len(b.categories[category])
}

// HasCategory reports whether the category exists in the bank.
func (b *Bank) HasCategory(category string) bool {
	_, ok := b.categories[category]
	return ok
}

// Step returns the raw step definition.
func (b *Bank) Step(category string, step int) (*Step, error) {
	steps, ok := b.categories[category]
	if !ok {
		return nil, apperror.NewNotFound("unknown category %q", category)
	}
	if step < 1 || step > len(steps) {
		return nil, apperror.NewNotFound("category %q has no step %d", category, step)
	}
	return &steps[step-1], nil
}

// StepsForPhase returns the ordered step ids belonging to one phase.
func (b *Bank) StepsForPhase(category, phase string) []int {
	return b.stepsByPhase[category][phase]
}

// GetQuestion returns a step localized to the requested language, falling
// back to the default language for missing translations.
func (b *Bank) GetQuestion(category string, step int, language string) (*LocalizedQuestion, error) {
	s, err := b.Step(category, step)
	if err != nil {
		return nil, err
	}

	options := make([]LocalizedOption, 0, len(s.Options))
	for _, opt := range s.Options {
		options = append(options, LocalizedOption{
			Id:    opt.Id,
			Label: opt.Label.Resolve(language, b.defaultLang),
		})
	}

	return &LocalizedQuestion{
		Step:       s.Id,
		TotalSteps: len(b.categories[category]),
		Phase:      s.Phase,
		Type:       s.Type,
		Question:   s.Question.Resolve(language, b.defaultLang),
		Options:    options,
		Numeric:    s.Numeric,
	}, nil
}

// Categories lists the categories the bank can qualify for.
func (b *Bank) Categories() []string {
	out := make([]string, 0, len(b.categories))
	for c := range b.categories {
		out = append(out, c)
	}
	return out
}

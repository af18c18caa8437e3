package questionbank

import (
	"context"
	"testing"
)

// Loads the shipped question bank and checks the invariants the matching
// engine relies on.
func TestShippedQuestionBank(t *testing.T) {
	bank, err := NewBank(context.Background(), NewJSONProvider("../../data/questions.json"), "en")
	if err != nil {
		t.Fatalf("load shipped question bank: %v", err)
	}

	for _, category := range bank.Categories() {
		total := bank.TotalSteps(category)
		if total == 0 {
			t.Errorf("category %s has no steps", category)
		}

		sawPrimary := false
		for stepId := 1; stepId <= total; stepId++ {
			step, err := bank.Step(category, stepId)
			if err != nil {
				t.Fatalf("%s step %d: %v", category, stepId, err)
			}

			switch step.Phase {
			case PhaseContext, PhasePrimaryProblem, PhaseGoals:
			default:
				t.Errorf("%s step %d: unknown phase %q", category, stepId, step.Phase)
			}
			if step.Phase == PhasePrimaryProblem {
				sawPrimary = true
			}

			if len(step.Options) == 0 && step.Type != TypeNumericRange {
				t.Errorf("%s step %d has no options", category, stepId)
			}
			for _, opt := range step.Options {
				if opt.Id == "" {
					t.Errorf("%s step %d has an option without an id", category, stepId)
				}
				// Effects must sit on the step's own phase; anything else
				// is inert data and almost certainly an authoring mistake.
				if step.Phase != PhaseContext && len(opt.Contraindications) > 0 {
					t.Errorf("%s step %d option %s: contraindications outside the context phase", category, stepId, opt.Id)
				}
				if step.Phase != PhasePrimaryProblem && len(opt.RequiredTags) > 0 {
					t.Errorf("%s step %d option %s: required tags outside the primary-problem phase", category, stepId, opt.Id)
				}
				if step.Phase != PhaseGoals && len(opt.BenefitTags) > 0 {
					t.Errorf("%s step %d option %s: benefit tags outside the goals phase", category, stepId, opt.Id)
				}
				if opt.Label.Resolve("en", "en") == "" {
					t.Errorf("%s step %d option %s: missing en label", category, stepId, opt.Id)
				}
			}

			q, err := bank.GetQuestion(category, stepId, "id")
			if err != nil {
				t.Fatalf("%s step %d localize: %v", category, stepId, err)
			}
			if q.Question == "" {
				t.Errorf("%s step %d: empty localized question", category, stepId)
			}
		}

		if !sawPrimary {
			t.Errorf("category %s has no primary-problem step", category)
		}
	}
}

// Package matching implements the benefits-based matching engine: answer
// extraction, hard filtering, scoring and ranked product recommendation.
package matching

import (
	"beauty-advisor-be/pkg/qualification"
	"beauty-advisor-be/pkg/questionbank"
)

// TagSet is a set of benefit/contraindication tags.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) Add(tags ...string) {
	for _, t := range tags {
		s[t] = struct{}{}
	}
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Intersect returns the members of tags present in the set, preserving the
// input order so matched-tag lists are deterministic.
func (s TagSet) Intersect(tags []string) []string {
	var out []string
	for _, t := range tags {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// extractPhase unions one effect field across every selected option of the
// steps belonging to the given phase. Unanswered steps and unknown option
// ids contribute nothing; question-bank edits must not break old sessions.
func extractPhase(bank *questionbank.Bank, answers qualification.Answers, category, phase string, effect func(*questionbank.Option) []string) TagSet {
	set := NewTagSet()
	for _, stepId := range bank.StepsForPhase(category, phase) {
		selection, ok := answers[stepId]
		if !ok {
			continue
		}
		step, err := bank.Step(category, stepId)
		if err != nil {
			continue
		}
		for _, optionId := range selection.OptionIds() {
			if opt := step.FindOption(optionId); opt != nil {
				set.Add(effect(opt)...)
			}
		}
	}
	return set
}

// ExtractContraindications unions the contraindications of every selected
// context-phase option.
func ExtractContraindications(bank *questionbank.Bank, answers qualification.Answers, category string) TagSet {
	return extractPhase(bank, answers, category, questionbank.PhaseContext, func(o *questionbank.Option) []string {
		return o.Contraindications
	})
}

// ExtractRequiredTags unions the required tags of every selected
// primary-problem-phase option.
func ExtractRequiredTags(bank *questionbank.Bank, answers qualification.Answers, category string) TagSet {
	return extractPhase(bank, answers, category, questionbank.PhasePrimaryProblem, func(o *questionbank.Option) []string {
		return o.RequiredTags
	})
}

// ExtractDesiredTags unions the benefit tags of every selected goals-phase
// option.
func ExtractDesiredTags(bank *questionbank.Bank, answers qualification.Answers, category string) TagSet {
	return extractPhase(bank, answers, category, questionbank.PhaseGoals, func(o *questionbank.Option) []string {
		return o.BenefitTags
	})
}

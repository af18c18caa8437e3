package matching

import (
	"context"
	"testing"

	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/qualification"
	"beauty-advisor-be/pkg/questionbank"
)

type staticBankProvider struct {
	categories map[string][]questionbank.Step
}

func (p *staticBankProvider) LoadCategories(_ context.Context) (map[string][]questionbank.Step, error) {
	return p.categories, nil
}

type staticCatalogProvider struct {
	products []catalog.Product
}

func (p *staticCatalogProvider) LoadProducts(_ context.Context) ([]catalog.Product, error) {
	return p.products, nil
}

func text(s string) catalog.LocalizedText {
	return catalog.LocalizedText{"en": s}
}

// testBank builds a 3-step hair flow: context, primary problem, goals.
func testBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	provider := &staticBankProvider{categories: map[string][]questionbank.Step{
		"hair": {
			{
				Id:       1,
				Phase:    questionbank.PhaseContext,
				Type:     questionbank.TypeSingleSelect,
				Question: text("How is your hair?"),
				Options: []questionbank.Option{
					{Id: "oily", Label: text("Oily"), Contraindications: []string{"heavy-oils"}},
					{Id: "dry", Label: text("Dry"), Contraindications: []string{"clarifying"}},
					{Id: "normal", Label: text("Normal")},
				},
			},
			{
				Id:       2,
				Phase:    questionbank.PhasePrimaryProblem,
				Type:     questionbank.TypeSingleSelect,
				Question: text("Main problem?"),
				Options: []questionbank.Option{
					{Id: "frizz", Label: text("Frizz"), RequiredTags: []string{"anti-frizz", "frizz-control"}},
					{Id: "dryness", Label: text("Dryness"), RequiredTags: []string{"dryness"}},
				},
			},
			{
				Id:       3,
				Phase:    questionbank.PhaseGoals,
				Type:     questionbank.TypeMultiSelect,
				Question: text("Goals?"),
				Options: []questionbank.Option{
					{Id: "shine", Label: text("Shine"), BenefitTags: []string{"shine"}},
					{Id: "volume", Label: text("Volume"), BenefitTags: []string{"volume"}},
				},
			},
		},
	}}

	bank, err := questionbank.NewBank(context.Background(), provider, "en")
	if err != nil {
		t.Fatalf("build test bank: %v", err)
	}
	return bank
}

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	provider := &staticCatalogProvider{products: []catalog.Product{
		{
			Id: "A", Category: "hair",
			Tags: []string{"dryness", "shine"},
			Name: text("Product A"), Description: text("a"), Usage: text("a"), Benefits: text("a"),
		},
		{
			Id: "B", Category: "hair",
			Tags:              []string{"dryness"},
			Contraindications: []string{"heavy-oils"},
			Name:              text("Product B"), Description: text("b"), Usage: text("b"), Benefits: text("b"),
		},
		{
			Id: "C", Category: "hair",
			Tags:     []string{"anti-frizz"},
			Metadata: catalog.Metadata{HumidityResistant: true},
			Name:     text("Product C"), Description: text("c"), Usage: text("c"), Benefits: text("c"),
		},
		{
			Id: "D", Category: "hair",
			Tags: []string{"anti-frizz"},
			Name: text("Product D"), Description: text("d"), Usage: text("d"), Benefits: text("d"),
		},
		{
			Id: "E", Category: "hair",
			Name: text("Product E"), Description: text("e"), Usage: text("e"), Benefits: text("e"),
		},
	}}

	store, err := catalog.NewStore(context.Background(), provider)
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return store
}

func answers(step1, step2 string, step3 ...string) qualification.Answers {
	a := qualification.Answers{}
	if step1 != "" {
		a[1] = qualification.Selection{Single: step1}
	}
	if step2 != "" {
		a[2] = qualification.Selection{Single: step2}
	}
	if len(step3) > 0 {
		a[3] = qualification.Selection{Multiple: step3}
	}
	return a
}

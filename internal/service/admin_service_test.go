package service

import (
	"context"
	"testing"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/questionbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogStats(t *testing.T) {
	ctx := context.Background()

	bank, err := questionbank.NewBank(ctx, &bankFixture{categories: map[string][]questionbank.Step{
		"hair": {
			{Id: 1, Phase: questionbank.PhaseContext, Type: questionbank.TypeSingleSelect, Question: enText("q"), Options: []questionbank.Option{{Id: "a", Label: enText("A")}}},
			{Id: 2, Phase: questionbank.PhasePrimaryProblem, Type: questionbank.TypeSingleSelect, Question: enText("q"), Options: []questionbank.Option{{Id: "b", Label: enText("B")}}},
			{Id: 3, Phase: questionbank.PhaseGoals, Type: questionbank.TypeMultiSelect, Question: enText("q"), Options: []questionbank.Option{{Id: "c", Label: enText("C")}}},
			{Id: 4, Phase: questionbank.PhaseGoals, Type: questionbank.TypeMultiSelect, Question: enText("q"), Options: []questionbank.Option{{Id: "d", Label: enText("D")}}},
		},
	}}, "en")
	require.NoError(t, err)

	store, err := catalog.NewStore(ctx, &catalogFixture{products: []catalog.Product{
		{Id: "HAIR-A", Category: "hair"},
		{Id: "HAIR-B", Category: "hair"},
	}})
	require.NoError(t, err)

	records := &fakeRecordRepo{}
	require.NoError(t, records.Create(ctx, &entity.QualificationRecord{SessionId: "s1", Category: "hair"}))
	require.NoError(t, records.Create(ctx, &entity.QualificationRecord{SessionId: "s2", Category: "hair"}))
	require.NoError(t, records.Create(ctx, &entity.QualificationRecord{SessionId: "s3", Category: "body"}))

	svc := NewAdminService(store, bank, records, nopLogger{})
	stats, err := svc.GetCatalogStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProducts)
	require.Len(t, stats.Categories, 1)
	hair := stats.Categories[0]
	assert.Equal(t, "hair", hair.Category)
	assert.Equal(t, 2, hair.Products)
	assert.Equal(t, 4, hair.TotalSteps)
	assert.Equal(t, 1, hair.ContextSteps)
	assert.Equal(t, 1, hair.PrimarySteps)
	assert.Equal(t, 2, hair.GoalSteps)
	assert.Equal(t, int64(2), hair.CompletedQualifications)
}

// Without a database there is no record repository; counts report zero.
func TestGetCatalogStatsWithoutRecords(t *testing.T) {
	ctx := context.Background()

	bank, err := questionbank.NewBank(ctx, &bankFixture{categories: map[string][]questionbank.Step{
		"hair": {
			{Id: 1, Phase: questionbank.PhaseContext, Type: questionbank.TypeSingleSelect, Question: enText("q"), Options: []questionbank.Option{{Id: "a", Label: enText("A")}}},
		},
	}}, "en")
	require.NoError(t, err)
	store, err := catalog.NewStore(ctx, &catalogFixture{products: []catalog.Product{{Id: "HAIR-A", Category: "hair"}}})
	require.NoError(t, err)

	svc := NewAdminService(store, bank, nil, nopLogger{})
	stats, err := svc.GetCatalogStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Categories, 1)
	assert.Equal(t, int64(0), stats.Categories[0].CompletedQualifications)
}

func TestGetLogsDefaultLimit(t *testing.T) {
	svc := NewAdminService(mustEmptyStore(t), mustEmptyBank(t), nil, nopLogger{})

	got, err := svc.GetLogs(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func mustEmptyStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(context.Background(), &catalogFixture{})
	require.NoError(t, err)
	return store
}

func mustEmptyBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	bank, err := questionbank.NewBank(context.Background(), &bankFixture{categories: map[string][]questionbank.Step{}}, "en")
	require.NoError(t, err)
	return bank
}

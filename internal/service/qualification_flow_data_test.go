package service

import (
	"context"
	"testing"
	"time"

	"beauty-advisor-be/internal/apperror"
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/repository/memory"
	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/matching"
	"beauty-advisor-be/pkg/questionbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the shipped hair flow end to end against the shipped catalog.
func TestQualificationFlowShippedHairBank(t *testing.T) {
	ctx := context.Background()

	bank, err := questionbank.NewBank(ctx, questionbank.NewJSONProvider("../../data/questions.json"), "en")
	require.NoError(t, err)
	store, err := catalog.NewStore(ctx, catalog.NewJSONProvider("../../data/catalog.json"))
	require.NoError(t, err)

	engine := matching.NewEngine(store, bank, "en")
	repo := memory.NewSessionRepository(time.Hour, 10*time.Minute)
	svc := NewQualificationService(bank, store, engine, repo, nil, nopLogger{}, "en")

	start, err := svc.StartQualification(ctx, &dto.StartQualificationRequest{SessionId: "sess-hair", Category: "hair", Language: "id"})
	require.NoError(t, err)
	require.Equal(t, 6, start.Question.TotalSteps)
	assert.NotEmpty(t, start.Question.Question)

	steps := []struct {
		step int
		ids  []string
	}{
		{1, []string{"normal"}},
		{2, []string{"heat-styling"}},
		{3, []string{"frizz"}},
		{4, []string{"shine", "heat-protection"}},
		{5, []string{"lightweight", "smooth"}},
	}
	for _, s := range steps {
		resp, err := svc.ProcessAnswer(ctx, answerReq("sess-hair", s.step, s.ids...))
		require.NoError(t, err, "step %d", s.step)
		assert.False(t, resp.Completed, "step %d must not complete the flow", s.step)
		require.NotNil(t, resp.NextQuestion)
		assert.Equal(t, s.step+1, resp.NextQuestion.Step)
	}

	// Recommendations are gated until the final step is answered.
	_, err = svc.GetRecommendations(ctx, "sess-hair", "", 0)
	assert.True(t, apperror.Is(err, apperror.ErrCodeIncompleteSession))

	resp, err := svc.ProcessAnswer(ctx, answerReq("sess-hair", 6, "no-preference"))
	require.NoError(t, err)
	assert.True(t, resp.Completed)

	recs, err := svc.GetRecommendations(ctx, "sess-hair", "id", 0)
	require.NoError(t, err)
	require.Greater(t, recs.Count, 0)
	assert.LessOrEqual(t, recs.Count, matching.DefaultLimit)

	// frizz was the stated problem; the humidity-resistant serum must win.
	top := recs.Recommendations[0]
	assert.Equal(t, "HAIR-001", top.Id)
	assert.Contains(t, top.MatchedRequiredTags, "anti-frizz")
	assert.GreaterOrEqual(t, top.MatchScore, recs.Recommendations[recs.Count-1].MatchScore)
	for _, r := range recs.Recommendations {
		assert.NotContains(t, r.Contraindications, "drying-alcohols",
			"heat-styling context must exclude drying-alcohol products")
	}
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSplitsByRatio(t *testing.T) {
	planner := NewMixPlannerService()

	tests := []struct {
		name      string
		total     int
		ratio     float64
		available int
		wantPrev  int
		wantAI    int
	}{
		{name: "even split rounds half up", total: 9, ratio: 0.5, available: 100, wantPrev: 5, wantAI: 4},
		{name: "default ratio", total: 10, ratio: 0.7, available: 100, wantPrev: 7, wantAI: 3},
		{name: "all previous year", total: 10, ratio: 1, available: 100, wantPrev: 10, wantAI: 0},
		{name: "all generated", total: 10, ratio: 0, available: 100, wantPrev: 0, wantAI: 10},
		{name: "single question leans previous", total: 1, ratio: 0.5, available: 100, wantPrev: 1, wantAI: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := planner.Plan(MixRequest{TopicID: 1, TotalCount: tc.total, PreviousYearRatio: tc.ratio}, tc.available)
			assert.Equal(t, tc.wantPrev, plan.PreviousYearCount)
			assert.Equal(t, tc.wantAI, plan.AIGeneratedCount)
		})
	}
}

func TestPlanCapsAtAvailablePool(t *testing.T) {
	planner := NewMixPlannerService()

	plan := planner.Plan(MixRequest{TopicID: 1, TotalCount: 10, PreviousYearRatio: 0.7}, 3)
	assert.Equal(t, 3, plan.PreviousYearCount, "capped at pool size")
	assert.Equal(t, 7, plan.AIGeneratedCount, "absorbs the shortfall")
}

func TestPlanAlwaysSumsToTotal(t *testing.T) {
	planner := NewMixPlannerService()

	for total := 1; total <= 50; total++ {
		for _, ratio := range []float64{0, 0.3, 0.5, 0.7, 1} {
			for _, available := range []int{0, 1, 5, total, total * 2} {
				plan := planner.Plan(MixRequest{TopicID: 1, TotalCount: total, PreviousYearRatio: ratio}, available)
				require.Equal(t, total, plan.PreviousYearCount+plan.AIGeneratedCount,
					"Plan(total=%d, ratio=%.1f, available=%d)", total, ratio, available)
				require.LessOrEqual(t, plan.PreviousYearCount, available,
					"Plan(total=%d, ratio=%.1f, available=%d)", total, ratio, available)
			}
		}
	}
}

func TestPlanClampsDegenerateInput(t *testing.T) {
	planner := NewMixPlannerService()

	empty := planner.Plan(MixRequest{TopicID: 1, TotalCount: 0, PreviousYearRatio: 0.5}, 10)
	assert.Equal(t, 0, empty.PreviousYearCount, "zero total yields an empty plan")
	assert.Equal(t, 0, empty.AIGeneratedCount)

	high := planner.Plan(MixRequest{TopicID: 1, TotalCount: 10, PreviousYearRatio: 1.7}, 100)
	assert.Equal(t, 10, high.PreviousYearCount, "ratio above 1 clamps to all previous-year")

	low := planner.Plan(MixRequest{TopicID: 1, TotalCount: 10, PreviousYearRatio: -0.3}, 100)
	assert.Equal(t, 10, low.AIGeneratedCount, "negative ratio clamps to all generated")
}

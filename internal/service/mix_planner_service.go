package service

import (
	"math"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
)

// MixRequest describes the composition of a mock test before any pools
// have been consulted.
type MixRequest struct {
	TopicID           uint
	TotalCount        int
	PreviousYearRatio float64
}

// MixPlan is the per-source split MixPlanner decides on.
type MixPlan struct {
	PreviousYearCount int
	AIGeneratedCount  int
}

// MixResult is a fully assembled question set ready to be persisted into a
// mock test or cached for later. AI-generated entries may carry a zero ID
// until they are inserted.
type MixResult struct {
	Questions         []model.Question `json:"questions"`
	PreviousYearCount int              `json:"previous_year_count"`
	AIGeneratedCount  int              `json:"ai_generated_count"`
	Ratio             float64          `json:"ratio"`
	CreatedAt         int64            `json:"created_at"`
}

type MixPlannerService interface {
	Plan(req MixRequest, availablePrevious int) MixPlan
}

type mixPlannerServiceImpl struct {
}

func NewMixPlannerService() MixPlannerService {
	return &mixPlannerServiceImpl{}
}

// Plan splits a requested test size between previous-year and AI-generated
// questions. The previous-year share is rounded half-up (9 questions at a
// 0.5 ratio give 5 previous-year, 4 generated). When the stored pool cannot
// cover its share, generation absorbs the difference; the reverse never
// happens at planning time.
func (s *mixPlannerServiceImpl) Plan(req MixRequest, availablePrevious int) MixPlan {
	if req.TotalCount <= 0 {
		return MixPlan{}
	}

	ratio := req.PreviousYearRatio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if availablePrevious < 0 {
		availablePrevious = 0
	}

	desiredPrevious := int(math.Floor(float64(req.TotalCount)*ratio + 0.5))
	actualPrevious := desiredPrevious
	if availablePrevious < actualPrevious {
		actualPrevious = availablePrevious
	}

	return MixPlan{
		PreviousYearCount: actualPrevious,
		AIGeneratedCount:  req.TotalCount - actualPrevious,
	}
}

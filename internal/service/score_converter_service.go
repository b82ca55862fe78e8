package service

import (
	"fmt"
	"math"
)

const MaxPercentageScore float64 = 100.0

type ScoreConverterService interface {
	PercentageScore(correctCount, totalCount int) (float64, error)
	ConvertToGrade(percentage float64) (string, error)
}

type scoreConverterServiceImpl struct {
}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// PercentageScore converts a correct-answer count into a 0-100 score,
// rounded to two decimal places.
func (s *scoreConverterServiceImpl) PercentageScore(correctCount, totalCount int) (float64, error) {
	if totalCount <= 0 {
		return 0, fmt.Errorf("total count must be positive, got %d", totalCount)
	}
	if correctCount < 0 || correctCount > totalCount {
		return 0, fmt.Errorf("correct count %d is out of valid range (0-%d)", correctCount, totalCount)
	}

	percentage := float64(correctCount) / float64(totalCount) * MaxPercentageScore
	if percentage > MaxPercentageScore {
		percentage = MaxPercentageScore
	}
	if percentage < 0 {
		percentage = 0
	}

	return math.Round(percentage*100) / 100, nil
}

// ConvertToGrade maps a percentage score onto the grade bands shown on
// result screens. Bands follow the common Indian competitive-exam cutoffs.
func (s *scoreConverterServiceImpl) ConvertToGrade(percentage float64) (string, error) {
	if percentage < 0 || percentage > MaxPercentageScore {
		return "", fmt.Errorf("percentage %.2f is out of valid range (0-%.2f)", percentage, MaxPercentageScore)
	}

	var grade string
	switch {
	case percentage >= 90:
		grade = "A+"
	case percentage >= 75:
		grade = "A"
	case percentage >= 60:
		grade = "B"
	case percentage >= 45:
		grade = "C"
	case percentage >= 33:
		grade = "D"
	default:
		grade = "F"
	}

	return grade, nil
}

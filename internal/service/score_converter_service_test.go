package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageScore(t *testing.T) {
	converter := NewScoreConverterService()

	tests := []struct {
		name    string
		correct int
		total   int
		want    float64
	}{
		{name: "all correct", correct: 10, total: 10, want: 100},
		{name: "none correct", correct: 0, total: 10, want: 0},
		{name: "two thirds", correct: 2, total: 3, want: 66.67},
		{name: "single question", correct: 1, total: 1, want: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := converter.PercentageScore(tc.correct, tc.total)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPercentageScoreRejectsInvalidCounts(t *testing.T) {
	converter := NewScoreConverterService()

	_, err := converter.PercentageScore(1, 0)
	assert.Error(t, err, "zero total")

	_, err = converter.PercentageScore(-1, 5)
	assert.Error(t, err, "negative correct count")

	_, err = converter.PercentageScore(6, 5)
	assert.Error(t, err, "correct count above total")
}

func TestConvertToGradeBands(t *testing.T) {
	converter := NewScoreConverterService()

	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{75, "A"},
		{60, "B"},
		{59.99, "C"},
		{45, "C"},
		{33, "D"},
		{32.99, "F"},
		{0, "F"},
	}

	for _, tc := range tests {
		got, err := converter.ConvertToGrade(tc.percentage)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ConvertToGrade(%.2f)", tc.percentage)
	}
}

func TestConvertToGradeRejectsOutOfRange(t *testing.T) {
	converter := NewScoreConverterService()

	_, err := converter.ConvertToGrade(-0.01)
	assert.Error(t, err, "negative percentage")

	_, err = converter.ConvertToGrade(100.01)
	assert.Error(t, err, "percentage above 100")
}

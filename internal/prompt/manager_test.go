package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
)

func TestNewManagerLoadsEmbeddedTemplates(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	for _, version := range []string{"v1", "v2"} {
		assert.True(t, m.Has(version), "template version %s must be loaded", version)
	}
	assert.False(t, m.Has("v99"))
}

func TestBuildSubstitutesAllPlaceholders(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	prompt, err := m.Build("v2", Input{
		Exam:       "UPSC Prelims",
		Subject:    "General Studies",
		Topic:      "Modern Indian History",
		Difficulty: "medium",
		Count:      4,
		Samples: []model.Question{
			{
				Text:          "Who founded the Indian National Congress?",
				OptionA:       "A. O. Hume",
				OptionB:       "Dadabhai Naoroji",
				OptionC:       "W. C. Bonnerjee",
				OptionD:       "Surendranath Banerjee",
				CorrectOption: "A",
			},
		},
	})
	require.NoError(t, err)

	for _, want := range []string{"UPSC Prelims", "General Studies", "Modern Indian History", "medium"} {
		assert.Contains(t, prompt, want)
	}
	assert.Contains(t, prompt, "Write 4 new multiple-choice questions")
	assert.Contains(t, prompt, "Who founded the Indian National Congress?")
	assert.NotContains(t, prompt, "{{.", "prompt has unresolved placeholders")
}

func TestBuildWithoutSamples(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	prompt, err := m.Build("v1", Input{Exam: "SSC CGL", Subject: "Quantitative Aptitude", Topic: "Percentages", Difficulty: "easy", Count: 2})
	require.NoError(t, err)
	assert.Contains(t, prompt, "(no reference questions available)")
}

func TestBuildUnknownVersion(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	_, err = m.Build("v0", Input{})
	require.Error(t, err, "unknown template version")
}

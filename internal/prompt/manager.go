package prompt

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// Manager holds the versioned generation prompt templates. Versions are the
// template file names (v1.yaml -> "v1"); bumping a prompt means adding a file.
type Manager struct {
	prompts map[string]string // version -> complete template
}

// loaded prompt template
type promptTemplate struct {
	BasePrompt string `yaml:"base_prompt"`
	Template   string `yaml:"template"`
}

// Input carries everything a generation prompt can reference.
type Input struct {
	Exam       string
	Subject    string
	Topic      string
	Difficulty string
	Count      int
	Samples    []model.Question
}

// NewManager creates a new prompt manager and loads templates.
func NewManager() (*Manager, error) {
	m := &Manager{
		prompts: make(map[string]string),
	}

	if err := m.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return m, nil
}

// Has reports whether a template exists for the given version.
func (m *Manager) Has(version string) bool {
	_, exists := m.prompts[version]
	return exists
}

// Build renders the prompt for the given template version.
func (m *Manager) Build(version string, in Input) (string, error) {
	tmpl, exists := m.prompts[version]
	if !exists {
		return "", fmt.Errorf("prompt template not found for version: %s", version)
	}

	// Simple string replacement instead of template execution
	result := strings.ReplaceAll(tmpl, "{{.Exam}}", in.Exam)
	result = strings.ReplaceAll(result, "{{.Subject}}", in.Subject)
	result = strings.ReplaceAll(result, "{{.Topic}}", in.Topic)
	result = strings.ReplaceAll(result, "{{.Difficulty}}", in.Difficulty)
	result = strings.ReplaceAll(result, "{{.Count}}", strconv.Itoa(in.Count))
	result = strings.ReplaceAll(result, "{{.Samples}}", formatSamples(in.Samples))

	return result, nil
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (m *Manager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var pt promptTemplate
		if err := yaml.Unmarshal(data, &pt); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		var full strings.Builder
		if pt.BasePrompt != "" {
			full.WriteString(pt.BasePrompt)
			full.WriteString("\n\n")
		}
		full.WriteString(pt.Template)

		version := strings.TrimSuffix(entry.Name(), ".yaml")
		m.prompts[version] = full.String()
	}

	return nil
}

// formatSamples renders reference questions as a numbered plain-text block.
func formatSamples(samples []model.Question) string {
	if len(samples) == 0 {
		return "(no reference questions available)"
	}

	var sb strings.Builder
	for i, q := range samples {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Text))
		sb.WriteString(fmt.Sprintf("   A) %s\n", q.OptionA))
		sb.WriteString(fmt.Sprintf("   B) %s\n", q.OptionB))
		sb.WriteString(fmt.Sprintf("   C) %s\n", q.OptionC))
		sb.WriteString(fmt.Sprintf("   D) %s\n", q.OptionD))
		sb.WriteString(fmt.Sprintf("   Answer: %s\n", q.CorrectOption))
	}
	return sb.String()
}

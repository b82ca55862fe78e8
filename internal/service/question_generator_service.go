package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/metrics"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/prompt"
)

// GenerationRequest describes one batch of questions to generate. Samples
// are existing questions shown to the model as style references.
type GenerationRequest struct {
	TopicID    uint
	Exam       string
	Subject    string
	Topic      string
	Difficulty string
	Count      int
	Samples    []model.Question
}

type QuestionGeneratorService interface {
	Generate(ctx context.Context, req GenerationRequest) ([]model.Question, error)
}

type questionGeneratorServiceImpl struct {
	provider      llm.Provider
	prompts       *prompt.Manager
	promptVersion string
	timeout       time.Duration
}

// NewLLMProvider builds the configured completion backend. A missing API key
// is not fatal: the app starts with generation disabled and serves
// previous-year questions only.
func NewLLMProvider(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(cfg.LLM.Provider, cfg)
	if err != nil {
		var provErr *llm.ProviderError
		if errors.As(err, &provErr) && provErr.Code == llm.ErrCodeAPIKey {
			log.Warn().Str("provider", cfg.LLM.Provider).Msg("LLM API key is not set. Question generation will be unavailable.")
			return nil, nil
		}
		return nil, err
	}
	log.Info().Str("provider", provider.Name()).Str("model", cfg.LLM.Model).Msg("LLM provider initialized")
	return provider, nil
}

func NewQuestionGeneratorService(cfg *config.Config, provider llm.Provider, prompts *prompt.Manager) (QuestionGeneratorService, error) {
	version := cfg.Generation.PromptVersion
	if !prompts.Has(version) {
		return nil, fmt.Errorf("unknown prompt version: %s", version)
	}
	return &questionGeneratorServiceImpl{
		provider:      provider,
		prompts:       prompts,
		promptVersion: version,
		timeout:       time.Duration(cfg.Generation.TimeoutSeconds) * time.Second,
	}, nil
}

// Generate asks the provider for req.Count questions and returns the valid
// ones. Structurally invalid records are dropped, so the result may be
// shorter than requested; callers make up the difference from stored
// questions. A nil error with an empty slice means the provider answered
// but nothing survived validation.
func (s *questionGeneratorServiceImpl) Generate(ctx context.Context, req GenerationRequest) ([]model.Question, error) {
	if req.Count <= 0 {
		return nil, nil
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrGenerationUnavailable)
	}

	promptText, err := s.prompts.Build(s.promptVersion, prompt.Input{
		Exam:       req.Exam,
		Subject:    req.Subject,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Count:      req.Count,
		Samples:    req.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build generation prompt: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startedAt := time.Now()
	raw, err := s.provider.Complete(genCtx, promptText)
	if err != nil {
		metrics.IncGeneration(s.provider.Name(), "unavailable")
		log.Error().Err(err).Uint("topicID", req.TopicID).Dur("elapsed", time.Since(startedAt)).Msg("LLM completion failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}

	questions, dropped, err := s.parseResponse(raw, req)
	if err != nil {
		metrics.IncGeneration(s.provider.Name(), "parse_error")
		log.Error().Err(err).Uint("topicID", req.TopicID).Msg("LLM response rejected")
		return nil, err
	}

	if dropped > 0 {
		metrics.AddQuestionsDropped(dropped)
		log.Debug().Int("dropped", dropped).Int("kept", len(questions)).Uint("topicID", req.TopicID).Msg("Dropped malformed generated questions")
	}
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}

	metrics.IncGeneration(s.provider.Name(), "ok")
	log.Info().
		Uint("topicID", req.TopicID).
		Int("requested", req.Count).
		Int("generated", len(questions)).
		Dur("elapsed", time.Since(startedAt)).
		Msg("Question generation finished")
	return questions, nil
}

type generatedQuestion struct {
	Text          string `json:"text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

type generatedPayload struct {
	Questions []generatedQuestion `json:"questions"`
}

func (s *questionGeneratorServiceImpl) parseResponse(raw string, req GenerationRequest) ([]model.Question, int, error) {
	cleaned := stripCodeFences(raw)

	var payload generatedPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		// Models occasionally wrap the document in prose; retry on the
		// outermost JSON object before giving up.
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start < 0 || end <= start {
			return nil, 0, fmt.Errorf("%w: %v", ErrGenerationParse, err)
		}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrGenerationParse, err)
		}
	}
	if payload.Questions == nil {
		return nil, 0, fmt.Errorf("%w: missing questions field", ErrGenerationParse)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	version := s.promptVersion

	questions := make([]model.Question, 0, len(payload.Questions))
	dropped := 0
	for _, gq := range payload.Questions {
		question, ok := buildQuestion(gq, req.TopicID, difficulty, &version)
		if !ok {
			dropped++
			continue
		}
		questions = append(questions, question)
	}
	return questions, dropped, nil
}

// buildQuestion validates one generated record and converts it into an
// unsaved model row. Records missing text, any option, or a usable correct
// option are rejected.
func buildQuestion(gq generatedQuestion, topicID uint, difficulty string, promptVersion *string) (model.Question, bool) {
	text := strings.TrimSpace(gq.Text)
	optionA := strings.TrimSpace(gq.OptionA)
	optionB := strings.TrimSpace(gq.OptionB)
	optionC := strings.TrimSpace(gq.OptionC)
	optionD := strings.TrimSpace(gq.OptionD)
	correct := strings.ToUpper(strings.TrimSpace(gq.CorrectOption))

	if text == "" || optionA == "" || optionB == "" || optionC == "" || optionD == "" {
		return model.Question{}, false
	}
	switch correct {
	case "A", "B", "C", "D":
	default:
		return model.Question{}, false
	}

	return model.Question{
		TopicID:       topicID,
		Text:          text,
		OptionA:       optionA,
		OptionB:       optionB,
		OptionC:       optionC,
		OptionD:       optionD,
		CorrectOption: correct,
		Explanation:   strings.TrimSpace(gq.Explanation),
		Source:        model.QuestionSourceAIGenerated,
		Difficulty:    difficulty,
		PromptVersion: promptVersion,
	}, true
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

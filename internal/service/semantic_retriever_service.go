package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

type semanticSearchRequest struct {
	Query    string  `json:"query"`
	Limit    int     `json:"limit"`
	MinScore float64 `json:"min_score"`
}

type semanticSearchHit struct {
	QuestionID uint    `json:"question_id"`
	Score      float64 `json:"score"`
}

type semanticSearchResponse struct {
	Results []semanticSearchHit `json:"results"`
}

// SemanticRetrieverService finds stored questions similar to a topic
// description through the external vector-search collaborator. It is a soft
// dependency: every failure degrades to an empty result so callers never
// have to handle retrieval errors.
type SemanticRetrieverService interface {
	FindSimilar(ctx context.Context, query string, limit int) []model.Question
}

type semanticRetrieverServiceImpl struct {
	baseURL      string
	minScore     float64
	httpClient   *http.Client
	questionRepo repository.QuestionRepository
}

func NewSemanticRetrieverService(cfg *config.Config, questionRepo repository.QuestionRepository) SemanticRetrieverService {
	if cfg.Retriever.BaseURL == "" {
		log.Warn().Msg("RETRIEVER_BASE_URL is not set. Semantic retrieval is disabled; generation will run without reference questions.")
	}
	return &semanticRetrieverServiceImpl{
		baseURL:      cfg.Retriever.BaseURL,
		minScore:     cfg.Retriever.MinScore,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.Retriever.TimeoutSeconds) * time.Second},
		questionRepo: questionRepo,
	}
}

func (s *semanticRetrieverServiceImpl) FindSimilar(ctx context.Context, query string, limit int) []model.Question {
	if s.baseURL == "" || limit <= 0 {
		return nil
	}

	hits, err := s.search(ctx, query, limit)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Semantic search failed, continuing without reference questions")
		return nil
	}
	if len(hits) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(hits))
	for _, hit := range hits {
		if hit.Score < s.minScore {
			continue
		}
		ids = append(ids, hit.QuestionID)
	}
	if len(ids) == 0 {
		return nil
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load questions for semantic search hits")
		return nil
	}

	// FindByIDs does not preserve input order, so restore the score ranking.
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}

func (s *semanticRetrieverServiceImpl) search(ctx context.Context, query string, limit int) ([]semanticSearchHit, error) {
	payload, err := json.Marshal(semanticSearchRequest{Query: query, Limit: limit, MinScore: s.minScore})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/search", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call semantic search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("semantic search returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed semanticSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}
	return parsed.Results, nil
}

package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/cache"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/metrics"
)

// PreGenerationScheduler builds question sets in the background while a
// user is studying a topic, so a later test start can skip the LLM round
// trip. Trigger never blocks the caller; it reports whether a task was
// actually scheduled.
type PreGenerationScheduler interface {
	Trigger(topicID uint, sessionDuration time.Duration) bool
	Stop()
}

type preGenerationScheduler struct {
	orchestrator  TestOrchestratorService
	store         cache.Store
	delay         time.Duration
	minSession    time.Duration
	questionCount int
	ratio         float64
	ttl           time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	inflight map[uint]struct{}
}

func NewPreGenerationScheduler(cfg *config.Config, orchestrator TestOrchestratorService, store cache.Store) PreGenerationScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &preGenerationScheduler{
		orchestrator:  orchestrator,
		store:         store,
		delay:         time.Duration(cfg.Generation.PreGenDelaySeconds) * time.Second,
		minSession:    time.Duration(cfg.Generation.PreGenMinSessionMinutes) * time.Minute,
		questionCount: cfg.Generation.PreGenQuestionCount,
		ratio:         cfg.Generation.DefaultRatio,
		ttl:           time.Duration(cfg.Generation.CacheTTLMinutes) * time.Minute,
		ctx:           ctx,
		cancel:        cancel,
		inflight:      make(map[uint]struct{}),
	}
}

// Trigger schedules one background generation for the topic after the
// configured delay. A topic with a task already scheduled or running is
// left alone; triggers for short study sessions are dropped entirely.
func (s *preGenerationScheduler) Trigger(topicID uint, sessionDuration time.Duration) bool {
	if sessionDuration < s.minSession {
		metrics.IncPreGenTask("skipped")
		log.Debug().Uint("topicID", topicID).Dur("sessionDuration", sessionDuration).Msg("Study session too short, skipping pre-generation")
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	if _, exists := s.inflight[topicID]; exists {
		metrics.IncPreGenTask("deduped")
		log.Debug().Uint("topicID", topicID).Msg("Pre-generation already in flight for topic, ignoring trigger")
		return false
	}
	s.inflight[topicID] = struct{}{}
	s.wg.Add(1)
	go s.run(topicID)
	return true
}

// Stop cancels pending delays and waits for running tasks to finish.
func (s *preGenerationScheduler) Stop() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *preGenerationScheduler) run(topicID uint) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.inflight, topicID)
		s.mu.Unlock()
	}()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.ctx.Done():
		log.Debug().Uint("topicID", topicID).Msg("Scheduler stopping, dropping pending pre-generation")
		return
	}

	result, err := s.orchestrator.BuildMix(s.ctx, topicID, s.questionCount, s.ratio)
	if err != nil {
		metrics.IncPreGenTask("failed")
		log.Warn().Err(err).Uint("topicID", topicID).Msg("Pre-generation failed, cache left empty")
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		metrics.IncPreGenTask("failed")
		log.Error().Err(err).Uint("topicID", topicID).Msg("Failed to encode pre-generated question set")
		return
	}
	if err := s.store.Set(s.ctx, PreGenCacheKey(topicID), payload, s.ttl); err != nil {
		metrics.IncPreGenTask("failed")
		log.Warn().Err(err).Uint("topicID", topicID).Msg("Failed to cache pre-generated question set")
		return
	}

	metrics.IncPreGenTask("completed")
	log.Info().
		Uint("topicID", topicID).
		Int("questions", len(result.Questions)).
		Dur("ttl", s.ttl).
		Msg("Pre-generated question set cached")
}

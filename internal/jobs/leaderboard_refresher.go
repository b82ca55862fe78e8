package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

const defaultRefreshSchedule = "@hourly"

// LeaderboardRefresher periodically rewrites the persisted leaderboard
// ranks so reads stay cheap between submissions.
type LeaderboardRefresher struct {
	leaderboardRepo repository.LeaderboardRepository
	schedule        string
	cron            *cron.Cron
}

func NewLeaderboardRefresher(leaderboardRepo repository.LeaderboardRepository, schedule string) *LeaderboardRefresher {
	if schedule == "" {
		schedule = defaultRefreshSchedule
	}
	return &LeaderboardRefresher{
		leaderboardRepo: leaderboardRepo,
		schedule:        schedule,
		cron:            cron.New(),
	}
}

// Start schedules the recurring refresh.
func (r *LeaderboardRefresher) Start() error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		if err := r.RunOnce(); err != nil {
			log.Error().Err(err).Msg("LeaderboardRefresher: scheduled refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule leaderboard refresh: %w", err)
	}

	r.cron.Start()
	log.Info().Str("schedule", r.schedule).Msg("LeaderboardRefresher: started")
	return nil
}

// Stop halts the schedule. A refresh already in flight finishes.
func (r *LeaderboardRefresher) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
		log.Info().Msg("LeaderboardRefresher: stopped")
	}
}

// RunOnce recomputes the ranks immediately.
func (r *LeaderboardRefresher) RunOnce() error {
	start := time.Now()
	if err := r.leaderboardRepo.RecomputeRanks(); err != nil {
		return fmt.Errorf("failed to recompute leaderboard ranks: %w", err)
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("LeaderboardRefresher: ranks recomputed")
	return nil
}

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mockmate/interview/internal/store"
	"mockmate/interview/internal/transcripts"
)

// RetentionJob sweeps completed sessions out of the hot session store once
// they age past the retention window. Transcripts are persisted at
// completion; the sweep re-saves any snapshot that failed back then before
// dropping the working copy.
type RetentionJob struct {
	sessions store.Store
	recorder *transcripts.Recorder // nil disables the re-save pass
	config   *RetentionConfig
	logger   *zap.Logger
	cron     *cron.Cron
}

// RetentionConfig contains configuration for the retention job
type RetentionConfig struct {
	Schedule string        // Cron schedule (e.g., "*/30 * * * *" for every half hour)
	MaxAge   time.Duration // How long completed sessions stay in the store
	Enabled  bool          // Whether to run sweeps
}

// NewRetentionJob creates a new retention job
func NewRetentionJob(sessions store.Store, config *RetentionConfig, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{
		sessions: sessions,
		config:   config,
		logger:   logger,
		cron:     cron.New(),
	}
}

// SetRecorder enables the pre-eviction transcript re-save pass.
func (rj *RetentionJob) SetRecorder(recorder *transcripts.Recorder) {
	rj.recorder = recorder
}

// Start begins the scheduled sweep
func (rj *RetentionJob) Start() error {
	if !rj.config.Enabled {
		rj.logger.Info("session retention sweep disabled, skipping scheduler")
		return nil
	}

	rj.logger.Info("starting session retention sweep",
		zap.String("schedule", rj.config.Schedule),
		zap.Duration("max_age", rj.config.MaxAge))

	_, err := rj.cron.AddFunc(rj.config.Schedule, func() {
		if err := rj.RunSweep(context.Background()); err != nil {
			rj.logger.Error("retention sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retention sweep: %w", err)
	}

	rj.cron.Start()
	return nil
}

// Stop stops the scheduled sweep
func (rj *RetentionJob) Stop() {
	if rj.cron != nil {
		rj.cron.Stop()
		rj.logger.Info("session retention sweep stopped")
	}
}

// RunSweep performs a single sweep over the store
func (rj *RetentionJob) RunSweep(ctx context.Context) error {
	sessions, err := rj.sessions.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	cutoff := time.Now().Add(-rj.config.MaxAge)
	swept := 0

	for _, session := range sessions {
		if !session.Completed() || session.EndTime == nil {
			continue
		}
		if session.EndTime.After(cutoff) {
			continue
		}
		if rj.recorder != nil {
			archived, err := rj.recorder.Exists(session.ID)
			if err == nil && !archived {
				if err := rj.recorder.Save(session); err != nil {
					rj.logger.Warn("failed to archive transcript before eviction, keeping session",
						zap.String("session_id", session.ID),
						zap.Error(err))
					continue
				}
			}
		}
		if err := rj.sessions.Delete(ctx, session.ID); err != nil {
			rj.logger.Warn("failed to delete expired session",
				zap.String("session_id", session.ID),
				zap.Error(err))
			continue
		}
		swept++
	}

	if swept > 0 {
		rj.logger.Info("retention sweep completed",
			zap.Int("swept", swept),
			zap.Int("remaining", len(sessions)-swept))
	}
	return nil
}

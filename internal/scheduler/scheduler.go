// Package scheduler runs the periodic dashboard snapshot job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/config"
	"github.com/mamadbah2/warehouse/internal/domain/models"
)

const jobTimeout = 2 * time.Minute

// Reporter builds the snapshot and the critical shelf-life alert.
type Reporter interface {
	Snapshot(ctx context.Context) (models.DashboardSnapshot, error)
	CriticalAlert(ctx context.Context) (string, bool, error)
}

// SnapshotSaver archives snapshots; *mongodb.MongoDBRepository satisfies it.
type SnapshotSaver interface {
	SaveSnapshot(ctx context.Context, snapshot models.DashboardSnapshot) error
}

// Notifier delivers the alert; the WhatsApp messaging service satisfies it.
type Notifier interface {
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	reporter  Reporter
	saver     SnapshotSaver
	notifier  Notifier
	managerID string
	logger    *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone. saver and
// notifier are optional; a nil one skips that half of the job.
func NewScheduler(cfg config.SnapshotConfig, managerID string, reporter Reporter, saver SnapshotSaver, notifier Notifier, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		schedule:  cfg.CronSchedule,
		reporter:  reporter,
		saver:     saver,
		notifier:  notifier,
		managerID: managerID,
		logger:    logger,
	}, nil
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runSnapshotJob); err != nil {
		return fmt.Errorf("schedule snapshot job %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runSnapshotJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("snapshot job failed", zap.Error(err))
	}
}

// RunOnce archives a snapshot and sends the critical alert. The alert is
// still attempted when archiving fails.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	var firstErr error

	if s.saver != nil {
		if err := s.saveSnapshot(ctx); err != nil {
			firstErr = err
		}
	}

	if s.notifier != nil && s.managerID != "" {
		if err := s.sendAlert(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (s *Scheduler) saveSnapshot(ctx context.Context) error {
	snapshot, err := s.reporter.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}
	if err := s.saver.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.Info("snapshot archived", zap.Time("taken_at", snapshot.TakenAt))
	return nil
}

func (s *Scheduler) sendAlert(ctx context.Context) error {
	message, ok, err := s.reporter.CriticalAlert(ctx)
	if err != nil {
		return fmt.Errorf("build critical alert: %w", err)
	}
	if !ok {
		s.logger.Debug("no critical batches, alert skipped")
		return nil
	}

	if err := s.notifier.SendOutbound(ctx, models.OutboundMessageRequest{To: s.managerID, Message: message}); err != nil {
		return fmt.Errorf("send critical alert: %w", err)
	}

	s.logger.Info("critical alert sent")
	return nil
}

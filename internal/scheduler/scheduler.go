package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/dabson254/lapor-hilang/internal/services"
	"github.com/robfig/cron/v3"
)

// Scheduler drives the recurring expiry sweep: one immediate run at startup
// and one every 24 hours after. Each tick is isolated; a panic or error in
// one run is logged and the next tick proceeds on schedule.
type Scheduler struct {
	cron    *cron.Cron
	reports *services.ReportService
	days    int
}

func New(reports *services.ReportService, days int) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		reports: reports,
		days:    days,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 24h", func() {
		s.runSweep(services.SweepActorScheduled)
	}); err != nil {
		return err
	}
	s.cron.Start()

	// Startup sweep runs once, off the request path.
	go s.runSweep(services.SweepActorStartup)

	slog.Info("expiry sweep scheduler started", "interval", "24h", "days", s.days)
	return nil
}

// Stop halts the schedule and returns a context that completes when any
// in-flight sweep has finished, so shutdown can let the current tick drain.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runSweep(actor string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("expiry sweep panicked", "action", "expiry_sweep", "actor", actor, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	affected, logged, err := s.reports.ExpirySweep(ctx, s.days, actor)
	if err != nil {
		slog.Error("expiry sweep failed", "action", "expiry_sweep", "actor", actor, "error", err)
		return
	}
	slog.Info("expiry sweep completed", "actor", actor, "affected", affected, "logged", logged)
}

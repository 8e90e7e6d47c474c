// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler reloads site content on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTimeout bounds a single reload run.
const DefaultTimeout = time.Minute

// Reloader re-reads content. content.Store satisfies it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Scheduler runs content reloads on a cron schedule.
type Scheduler struct {
	reloader Reloader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	timeout  time.Duration

	mu      sync.Mutex
	entryID cron.EntryID
	lastRun time.Time
	lastErr error
}

// New creates a scheduler. The schedule is a standard five-field cron
// expression or a descriptor such as "@hourly".
func New(reloader Reloader, schedule string, logger *slog.Logger) (*Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}

	return &Scheduler{
		reloader: reloader,
		schedule: schedule,
		// Overlapping runs are skipped; a slow reload never stacks up.
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger:  logger.With("category", "scheduler"),
		timeout: DefaultTimeout,
	}, nil
}

// Start registers the reload job and starts the cron loop.
func (s *Scheduler) Start() error {
	id, err := s.cron.AddFunc(s.schedule, func() {
		_ = s.RunNow(context.Background())
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entryID = id
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("scheduler started", "schedule", s.schedule, "next_run", s.NextRun())
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running reload.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// RunNow performs one reload immediately.
func (s *Scheduler) RunNow(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.reloader.Reload(ctx)

	s.mu.Lock()
	s.lastRun = start
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("scheduled content reload failed", "error", err)
		return err
	}
	s.logger.Debug("scheduled content reload finished", "duration", time.Since(start))
	return nil
}

// NextRun returns the next scheduled run, or the zero time before Start.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	id := s.entryID
	s.mu.Unlock()

	if id == 0 {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// LastRun returns the start time and result of the most recent run.
func (s *Scheduler) LastRun() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastErr
}

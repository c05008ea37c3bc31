// Package scheduler polls the clock and fires the daily pipeline inside the
// configured posting window.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"reelforge/config"
	"reelforge/logging"
	"reelforge/types"
)

// Job is one schedulable unit of work, fired at most once per day.
type Job interface {
	Run(ctx context.Context) types.RunResult
}

// Scheduler wakes up once a minute and runs the job when the local time is
// inside the posting window and the job has not been attempted today. The
// job's own idempotency guard still applies; the in-memory date is just the
// cheap first check.
type Scheduler struct {
	cfg *config.Config
	log *logging.Logger
	job Job

	// Once makes Run return after the first in-window attempt.
	Once bool

	pollInterval time.Duration
	postRunDelay time.Duration
	lastRunDate  string

	now   func() time.Time                          // injectable clock
	sleep func(ctx context.Context, d time.Duration) // injectable wait
}

func New(cfg *config.Config, log *logging.Logger, job Job) *Scheduler {
	return &Scheduler{
		cfg:          cfg,
		log:          log,
		job:          job,
		pollInterval: time.Minute,
		postRunDelay: 2 * time.Minute,
		now:          time.Now,
		sleep:        sleepCtx,
	}
}

// Run polls until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	start, err := parseClock(s.cfg.Posting.TimeStart)
	if err != nil {
		return fmt.Errorf("posting window start: %w", err)
	}
	end, err := parseClock(s.cfg.Posting.TimeEnd)
	if err != nil {
		return fmt.Errorf("posting window end: %w", err)
	}
	if end < start {
		return fmt.Errorf("posting window end %q before start %q", s.cfg.Posting.TimeEnd, s.cfg.Posting.TimeStart)
	}
	s.log.Info("Scheduler started | window=%s-%s", s.cfg.Posting.TimeStart, s.cfg.Posting.TimeEnd)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		now := s.now().In(s.cfg.Location())
		date := now.Format("2006-01-02")

		if s.lastRunDate != date && inWindow(now, start, end) {
			result := s.job.Run(ctx)
			if result.Err != nil {
				s.log.Warn("Scheduled run failed: %v", result.Err)
			}
			// One attempt per day, successful or not. The next chance
			// is tomorrow's window.
			s.lastRunDate = date
			if s.Once {
				return nil
			}
			s.sleep(ctx, s.postRunDelay)
			continue
		}
		s.sleep(ctx, s.pollInterval)
	}
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(v string) (int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", v)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", v)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid minute in %q", v)
	}
	return hour*60 + min, nil
}

func inWindow(now time.Time, start, end int) bool {
	m := now.Hour()*60 + now.Minute()
	return m >= start && m <= end
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

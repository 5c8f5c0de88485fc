package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/config"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const (
	JobResendNotifications = "resend-notifications"
	JobCompletePastBooking = "complete-past-bookings"
	JobPurgeIdempotency    = "purge-idempotency-keys"

	jobTimeout = 2 * time.Minute
)

// Scheduler runs the maintenance jobs on cron specs. A job that is still
// running when its next tick comes is skipped, and a panic is logged instead
// of killing the process.
type Scheduler struct {
	cron    *cron.Cron
	jobs    commands.MaintenanceCommands
	entries map[string]cron.EntryID
}

func New(cfg config.JobsConfig, jobs commands.MaintenanceCommands) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.CompletionTimezone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JOBS_COMPLETION_TIMEZONE")
	}

	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo))
	s := &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		jobs:    jobs,
		entries: make(map[string]cron.EntryID, 3),
	}

	if err := s.add(JobResendNotifications, cfg.ResendSpec, s.resendNotifications); err != nil {
		return nil, err
	}
	if err := s.add(JobCompletePastBooking, cfg.CompletionSpec, s.completePastBookings); err != nil {
		return nil, err
	}
	if err := s.add(JobPurgeIdempotency, cfg.PurgeSpec, s.purgeIdempotencyKeys); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) add(name, spec string, fn func()) error {
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return errs.Wrap(err, "invalid cron spec for "+name)
	}
	s.entries[name] = id
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("⏰ Scheduler started", slog.Int("jobs", len(s.entries)))
}

// Stop waits for running jobs, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next reports when a job fires next; zero before Start.
func (s *Scheduler) Next(name string) time.Time {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

func (s *Scheduler) resendNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.jobs.ResendMissingNotifications(ctx)
	if err != nil {
		slog.Error("Job failed", slog.String("job", JobResendNotifications), slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		slog.Info("Job finished", slog.String("job", JobResendNotifications), slog.Int("bookings", n))
	}
}

func (s *Scheduler) completePastBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.jobs.CompletePastBookings(ctx)
	if err != nil {
		slog.Error("Job failed", slog.String("job", JobCompletePastBooking), slog.String("error", err.Error()))
		return
	}
	slog.Info("Job finished", slog.String("job", JobCompletePastBooking), slog.Int64("bookings", n))
}

func (s *Scheduler) purgeIdempotencyKeys() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.jobs.PurgeExpiredIdempotencyKeys(ctx)
	if err != nil {
		slog.Error("Job failed", slog.String("job", JobPurgeIdempotency), slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		slog.Info("Job finished", slog.String("job", JobPurgeIdempotency), slog.Int64("keys", n))
	}
}

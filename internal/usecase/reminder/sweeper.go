package reminder

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var (
	ErrSweepInProgress = errs.New("reminder sweep already in progress")
	ErrSweeperStarted  = errs.New("reminder sweeper already started")
)

const (
	DefaultBatchSize   int32 = 200
	DefaultMaxAttempts int32 = 3
	DefaultStuckAfter        = 15 * time.Minute
	DefaultMaxLateness       = 3 * time.Hour
)

type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushSender delivers one notification to a set of device tokens.
// It reports tokens the provider rejected as permanently invalid.
type PushSender interface {
	Send(ctx context.Context, tokens []string, n Notification) (invalidTokens []string, err error)
}

type Config struct {
	Spec        string
	BatchSize   int32
	MaxAttempts int32
	StuckAfter  time.Duration
	// Jobs due longer ago than this are dropped instead of sent.
	MaxLateness time.Duration
	Location    *time.Location
}

type SweepResult struct {
	Requeued int64
	Claimed  int
	Sent     int
	Failed   int
	Canceled int
}

type Sweeper struct {
	uow    shared.UnitOfWork
	sender PushSender
	clock  clock.Clock
	logger *slog.Logger
	cfg    Config

	running sync.Mutex
	mu      sync.Mutex
	cron    *cron.Cron
}

func NewSweeper(uow shared.UnitOfWork, sender PushSender, clk clock.Clock, logger *slog.Logger, cfg Config) *Sweeper {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.StuckAfter <= 0 {
		cfg.StuckAfter = DefaultStuckAfter
	}
	if cfg.MaxLateness <= 0 {
		cfg.MaxLateness = DefaultMaxLateness
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Sweeper{
		uow:    uow,
		sender: sender,
		clock:  clk,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *Sweeper) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return ErrSweeperStarted
	}

	cl := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithLocation(s.cfg.Location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(s.cfg.Spec, s.runScheduled); err != nil {
		return errs.Wrapf(err, "invalid reminder sweep schedule %q", s.cfg.Spec)
	}
	c.Start()
	s.cron = c

	s.logger.Info("reminder sweeper started", "spec", s.cfg.Spec, "batch", s.cfg.BatchSize)
	return nil
}

// Stop waits for a running sweep to finish or for ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return nil
	}

	select {
	case <-c.Stop().Done():
		s.logger.Info("reminder sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) runScheduled() {
	res, err := s.RunOnce(context.Background())
	if err != nil {
		s.logger.Error("reminder sweep failed", "error", err.Error())
		return
	}
	if res.Claimed > 0 || res.Requeued > 0 {
		s.logger.Info("reminder sweep finished",
			"claimed", res.Claimed,
			"sent", res.Sent,
			"failed", res.Failed,
			"canceled", res.Canceled,
			"requeued", res.Requeued)
	}
}

// RunOnce delivers every reminder due at the current clock time.
func (s *Sweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	if !s.running.TryLock() {
		return SweepResult{}, ErrSweepInProgress
	}
	defer s.running.Unlock()

	var res SweepResult
	now := s.clock.Now()

	var jobs []shared.ReminderJob
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requeued, err := tx.Reminders().RequeueStuck(ctx, tx.DB(), now, now.Add(-s.cfg.StuckAfter))
		if err != nil {
			return err
		}
		res.Requeued = requeued

		jobs, err = tx.Reminders().ClaimDue(ctx, tx.DB(), now, s.cfg.BatchSize)
		return err
	})
	if err != nil {
		return res, errs.Wrap(err, "claim due reminders")
	}
	res.Claimed = len(jobs)
	latest := latestDue(jobs)

	for _, job := range jobs {
		// unprocessed jobs stay claimed and are requeued once stuck
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		var outcome shared.ReminderJobStatus
		switch {
		case job.FiresAt.Before(latest[job.ScheduleID]):
			outcome = s.cancel(ctx, job, now, "superseded by a later reminder")
		case now.Sub(job.FiresAt) > s.cfg.MaxLateness:
			outcome = s.cancel(ctx, job, now, "expired")
		default:
			outcome = s.process(ctx, job, now)
		}
		switch outcome {
		case shared.ReminderSent:
			res.Sent++
		case shared.ReminderCanceled:
			res.Canceled++
		default:
			res.Failed++
		}
	}
	return res, nil
}

// latestDue maps each schedule to the fire time of its most recent due job.
func latestDue(jobs []shared.ReminderJob) map[uuid.UUID]time.Time {
	latest := make(map[uuid.UUID]time.Time, len(jobs))
	for _, j := range jobs {
		if j.FiresAt.After(latest[j.ScheduleID]) {
			latest[j.ScheduleID] = j.FiresAt
		}
	}
	return latest
}

func (s *Sweeper) process(ctx context.Context, job shared.ReminderJob, now time.Time) shared.ReminderJobStatus {
	reads := s.uow.CommandReads()

	snap, err := reads.ScheduleByID(ctx, job.ScheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return s.cancel(ctx, job, now, "schedule deleted")
		}
		return s.fail(ctx, job, now, err)
	}
	if snap.IsCompleted {
		return s.cancel(ctx, job, now, "schedule completed")
	}
	if !snap.ScheduledDate.Equal(job.ScheduledFor) {
		return s.cancel(ctx, job, now, "schedule moved")
	}

	tokens, err := reads.DeviceTokensByUser(ctx, job.UserID)
	if err != nil {
		return s.fail(ctx, job, now, err)
	}
	if len(tokens) == 0 {
		s.logger.Info("no devices registered, reminder dropped",
			"job_id", job.ID, "user_id", job.UserID)
		return s.markSent(ctx, job, now)
	}

	invalid, sendErr := s.sender.Send(ctx, tokens, notificationFor(job))
	if len(invalid) > 0 {
		s.removeTokens(ctx, job.UserID, invalid)
	}
	if sendErr != nil {
		return s.fail(ctx, job, now, sendErr)
	}
	return s.markSent(ctx, job, now)
}

func (s *Sweeper) markSent(ctx context.Context, job shared.ReminderJob, now time.Time) shared.ReminderJobStatus {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reminders().MarkSent(ctx, tx.DB(), job.ID, now)
	})
	if err != nil {
		s.logger.Error("failed to mark reminder sent", "job_id", job.ID, "error", err.Error())
	}
	return shared.ReminderSent
}

func (s *Sweeper) cancel(ctx context.Context, job shared.ReminderJob, now time.Time, reason string) shared.ReminderJobStatus {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reminders().MarkCanceled(ctx, tx.DB(), job.ID, now)
	})
	if err != nil {
		s.logger.Error("failed to cancel stale reminder", "job_id", job.ID, "error", err.Error())
	}
	s.logger.Debug("stale reminder canceled", "job_id", job.ID, "schedule_id", job.ScheduleID, "reason", reason)
	return shared.ReminderCanceled
}

func (s *Sweeper) fail(ctx context.Context, job shared.ReminderJob, now time.Time, cause error) shared.ReminderJobStatus {
	status := shared.ReminderFailed
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st, err := tx.Reminders().MarkFailed(ctx, tx.DB(), job.ID, cause.Error(), s.cfg.MaxAttempts, now)
		status = st
		return err
	})
	if infra.IsKind(err, infra.KindNotFound) {
		// canceled by a reschedule, completion or delete while the send was in flight
		s.logger.Debug("reminder released before its failure was recorded",
			"job_id", job.ID, "error", cause.Error())
		return shared.ReminderCanceled
	}
	if err != nil {
		s.logger.Error("failed to record reminder failure", "job_id", job.ID, "error", err.Error())
	}
	s.logger.Warn("reminder delivery failed",
		"job_id", job.ID,
		"attempt", job.Attempts,
		"next_status", string(status),
		"error", cause.Error())
	return shared.ReminderFailed
}

func (s *Sweeper) removeTokens(ctx context.Context, userID uuid.UUID, tokens []string) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Devices().DeleteTokens(ctx, tx.DB(), tokens)
		return err
	})
	if err != nil {
		s.logger.Warn("failed to remove invalid device tokens", "user_id", userID, "error", err.Error())
		return
	}
	s.logger.Info("removed invalid device tokens", "user_id", userID, "count", len(tokens))
}

func notificationFor(job shared.ReminderJob) Notification {
	return Notification{
		Title: job.Title,
		Body:  job.Body,
		Data: map[string]string{
			"type":        "recipe_reminder",
			"schedule_id": job.ScheduleID.String(),
			"offset_days": strconv.Itoa(job.OffsetDays),
		},
	}
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}

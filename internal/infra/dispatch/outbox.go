package dispatch

import (
	"context"
	"log/slog"

	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// OutboxDispatcher stores planned reminders as queued reminder_jobs rows.
// Delivery happens later in the reminder sweeper.
type OutboxDispatcher struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewOutboxDispatcher(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *OutboxDispatcher {
	return &OutboxDispatcher{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Schedule replaces whatever is still queued for the schedule with the given plan.
func (d *OutboxDispatcher) Schedule(ctx context.Context, plan shared.ReminderPlan) error {
	now := d.clock.Now()
	var replaced int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reminders().CancelPending(ctx, tx.DB(), plan.ScheduleID, now)
		if err != nil {
			return err
		}
		replaced = n
		if len(plan.Reminders) == 0 {
			return nil
		}
		return tx.Reminders().Enqueue(ctx, tx.DB(), plan, now)
	})
	if err != nil {
		return errs.Wrapf(err, "enqueue reminders for schedule %s", plan.ScheduleID)
	}

	d.logger.Debug("reminders queued",
		"schedule_id", plan.ScheduleID,
		"count", len(plan.Reminders),
		"replaced", replaced)
	return nil
}

func (d *OutboxDispatcher) Cancel(ctx context.Context, scheduleID uuid.UUID) error {
	var canceled int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reminders().CancelPending(ctx, tx.DB(), scheduleID, d.clock.Now())
		canceled = n
		return err
	})
	if err != nil {
		return errs.Wrapf(err, "cancel reminders for schedule %s", scheduleID)
	}

	d.logger.Debug("reminders canceled", "schedule_id", scheduleID, "count", canceled)
	return nil
}

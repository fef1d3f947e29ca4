package commands

import (
	"context"
	"log/slog"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidScheduleDate     = errs.New("scheduled date must be in the future")
	ErrInvalidRecipe           = errs.New("invalid recipe snapshot")
	ErrScheduleNotFound        = errs.New("schedule not found")
	ErrScheduleCompleted       = errs.New("schedule already completed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrReminderDispatchFailed  = errs.New("reminder dispatch failed")
)

type CreateScheduleInput struct {
	Recipe schedule.RecipeSnapshotInput
	// Calendar date to cook on; only the year, month and day are read.
	Date time.Time
}

type ScheduleResult struct {
	ScheduleID    uuid.UUID
	ScheduledDate time.Time
	IsCompleted   bool
	CompletedAt   *time.Time
	Reminders     []schedule.ReminderInstant
	// False when the store write succeeded but the reminders could not be handed off.
	RemindersDispatched bool
}

type ScheduleCommands interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateScheduleInput) (*ScheduleResult, error)
	Reschedule(ctx context.Context, userID, scheduleID uuid.UUID, date time.Time) (*ScheduleResult, error)
	MarkCompleted(ctx context.Context, userID, scheduleID uuid.UUID) (*ScheduleResult, error)
	Delete(ctx context.Context, userID, scheduleID uuid.UUID) error
}

type scheduleCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher shared.ReminderDispatcher
	services   *schedule.Services
	logger     *slog.Logger
}

func NewScheduleCommands(
	uow shared.UnitOfWork,
	dispatcher shared.ReminderDispatcher,
	clk clock.Clock,
	planner *schedule.Planner,
	logger *slog.Logger,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		services:   &schedule.Services{Clock: clk, Planner: planner},
		logger:     logger,
	}
}

func (c *scheduleCommandsImpl) Create(ctx context.Context, userID uuid.UUID, in CreateScheduleInput) (*ScheduleResult, error) {
	recipe, err := schedule.NewRecipeSnapshot(in.Recipe)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecipe)
	}

	agg, err := schedule.NewScheduledRecipe(c.services, userID, recipe, c.services.Planner.OnDate(in.Date))
	if err != nil {
		return nil, mapDomainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Schedules().Create(ctx, tx.DB(), agg)
		return derr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	reminders := agg.PlanReminders(c.services.Planner, c.services.Clock.Now())
	dispatched := c.dispatch(ctx, agg, reminders)

	return newScheduleResult(agg, reminders, dispatched), nil
}

func (c *scheduleCommandsImpl) Reschedule(ctx context.Context, userID, scheduleID uuid.UUID, date time.Time) (*ScheduleResult, error) {
	var agg *schedule.ScheduledRecipe
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loaded, derr := c.loadOwned(ctx, tx, userID, scheduleID)
		if derr != nil {
			return derr
		}
		if derr = loaded.Reschedule(c.services, c.services.Planner.OnDate(date)); derr != nil {
			return mapDomainErr(derr)
		}
		if derr = tx.Schedules().UpdateDate(ctx, tx.DB(), loaded); derr != nil {
			return storeErr(derr)
		}
		agg = loaded
		return nil
	})
	if err != nil {
		return nil, txErr(err)
	}

	dispatched := c.cancel(ctx, scheduleID)
	reminders := agg.PlanReminders(c.services.Planner, c.services.Clock.Now())
	dispatched = c.dispatch(ctx, agg, reminders) && dispatched

	return newScheduleResult(agg, reminders, dispatched), nil
}

func (c *scheduleCommandsImpl) MarkCompleted(ctx context.Context, userID, scheduleID uuid.UUID) (*ScheduleResult, error) {
	var agg *schedule.ScheduledRecipe
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loaded, derr := c.loadOwned(ctx, tx, userID, scheduleID)
		if derr != nil {
			return derr
		}
		if derr = loaded.MarkCompleted(c.services.Clock.Now()); derr != nil {
			return mapDomainErr(derr)
		}
		if derr = tx.Schedules().MarkCompleted(ctx, tx.DB(), loaded); derr != nil {
			return storeErr(derr)
		}
		agg = loaded
		return nil
	})
	if err != nil {
		return nil, txErr(err)
	}

	dispatched := c.cancel(ctx, scheduleID)
	return newScheduleResult(agg, []schedule.ReminderInstant{}, dispatched), nil
}

func (c *scheduleCommandsImpl) Delete(ctx context.Context, userID, scheduleID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := c.loadOwned(ctx, tx, userID, scheduleID); derr != nil {
			return derr
		}
		if derr := tx.Schedules().Delete(ctx, tx.DB(), scheduleID); derr != nil {
			return storeErr(derr)
		}
		return nil
	})
	if err != nil {
		return txErr(err)
	}

	c.cancel(ctx, scheduleID)
	return nil
}

// Another user's schedule is reported as missing so ids cannot be probed.
func (c *scheduleCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, userID, scheduleID uuid.UUID) (*schedule.ScheduledRecipe, error) {
	snap, err := tx.Reads().ScheduleByIDForUpdate(ctx, scheduleID)
	if err != nil {
		return nil, storeErr(err)
	}
	if snap.UserID != userID {
		return nil, ErrScheduleNotFound
	}
	agg, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return agg, nil
}

func (c *scheduleCommandsImpl) dispatch(ctx context.Context, agg *schedule.ScheduledRecipe, reminders []schedule.ReminderInstant) bool {
	if len(reminders) == 0 {
		return true
	}
	plan := shared.ReminderPlan{
		ScheduleID:   agg.ID(),
		UserID:       agg.UserID(),
		ScheduledFor: agg.ScheduledDate(),
		Reminders:    reminders,
	}
	if err := c.dispatcher.Schedule(ctx, plan); err != nil {
		err = errs.Mark(err, ErrReminderDispatchFailed)
		c.logger.Warn("failed to dispatch reminders",
			"schedule_id", agg.ID(),
			"count", len(reminders),
			"error", err.Error())
		return false
	}
	return true
}

func (c *scheduleCommandsImpl) cancel(ctx context.Context, scheduleID uuid.UUID) bool {
	if err := c.dispatcher.Cancel(ctx, scheduleID); err != nil {
		err = errs.Mark(err, ErrReminderDispatchFailed)
		c.logger.Warn("failed to cancel reminders",
			"schedule_id", scheduleID,
			"error", err.Error())
		return false
	}
	return true
}

func mapDomainErr(err error) error {
	switch {
	case errs.Is(err, schedule.ErrScheduledDateNotFuture):
		return errs.Mark(err, ErrInvalidScheduleDate)
	case errs.Is(err, schedule.ErrAlreadyCompleted):
		return errs.Mark(err, ErrScheduleCompleted)
	case errs.IsAny(err, schedule.ErrEmptyRecipeName, schedule.ErrRecipeNameTooLong,
		schedule.ErrInvalidServings, schedule.ErrInvalidTotalTime, schedule.ErrMissingOwner):
		return errs.Mark(err, ErrInvalidRecipe)
	default:
		return err
	}
}

func storeErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrScheduleNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

// Begin and commit failures surface from the unit of work unmarked.
func txErr(err error) error {
	if errs.IsAny(err, ErrScheduleNotFound, ErrInvalidScheduleDate, ErrScheduleCompleted, ErrInvalidRecipe, ErrDatabaseOperationFailed) {
		return err
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func newScheduleResult(agg *schedule.ScheduledRecipe, reminders []schedule.ReminderInstant, dispatched bool) *ScheduleResult {
	return &ScheduleResult{
		ScheduleID:          agg.ID(),
		ScheduledDate:       agg.ScheduledDate(),
		IsCompleted:         agg.IsCompleted(),
		CompletedAt:         agg.CompletedAt(),
		Reminders:           reminders,
		RemindersDispatched: dispatched,
	}
}

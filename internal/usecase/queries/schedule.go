package queries

import (
	"context"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrScheduleNotFound   = errs.New("schedule not found")
	ErrInvalidCursor      = errs.New("invalid cursor")
	ErrInvalidPreviewDate = errs.New("preview date must be in the future")
)

type ScheduleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error)
	FindPendingReminders(ctx context.Context, scheduleID uuid.UUID) ([]ReminderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, includeCompleted bool, limit int32) ([]*ScheduleListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, includeCompleted bool, afterDate time.Time, afterID uuid.UUID, limit int32) ([]*ScheduleListItem, error)
}

type ScheduleQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*ScheduleView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ScheduleListFilter, cursor *Cursor, limit int) ([]*ScheduleListItem, *Cursor, error)
	Preview(ctx context.Context, recipeName string, date time.Time) (*PreviewView, error)
}

type scheduleQueriesImpl struct {
	repo    ScheduleReadStore
	clock   clock.Clock
	planner *schedule.Planner
}

func NewScheduleQueries(repo ScheduleReadStore, clk clock.Clock, planner *schedule.Planner) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo, clock: clk, planner: planner}
}

func (q *scheduleQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*ScheduleView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if view.UserID != actorID {
		return nil, ErrScheduleNotFound
	}

	view.Badge = q.planner.Classify(view.ScheduledDate, q.clock.Now()).String()
	view.PendingReminders = []ReminderView{}
	if view.IsCompleted {
		return view, nil
	}

	pending, err := q.repo.FindPendingReminders(ctx, id)
	if err != nil {
		return nil, err
	}
	view.PendingReminders = append(view.PendingReminders, pending...)
	return view, nil
}

func (q *scheduleQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter ScheduleListFilter, cursor *Cursor, limit int) ([]*ScheduleListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ScheduleListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, filter.IncludeCompleted, int32(limit+1))
	} else {
		afterDate, afterID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, filter.IncludeCompleted, afterDate, afterID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ScheduledDate, last.ID)}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	for _, row := range rows {
		row.Badge = q.planner.Classify(row.ScheduledDate, now).String()
	}
	return rows, next, nil
}

// Preview runs the planner for a date without persisting anything.
func (q *scheduleQueriesImpl) Preview(_ context.Context, recipeName string, date time.Time) (*PreviewView, error) {
	now := q.clock.Now()
	scheduledDate := q.planner.OnDate(date)
	if !scheduledDate.After(now) {
		return nil, ErrInvalidPreviewDate
	}

	instants := q.planner.ComputeReminders(uuid.Nil, recipeName, scheduledDate, now)
	reminders := make([]ReminderView, 0, len(instants))
	for _, r := range instants {
		reminders = append(reminders, ReminderView{
			OffsetDays: r.OffsetDays,
			FiresAt:    r.FiresAt,
			Title:      r.Title,
			Body:       r.Body,
			Status:     "planned",
		})
	}

	return &PreviewView{
		ScheduledDate: scheduledDate,
		Badge:         q.planner.Classify(scheduledDate, now).String(),
		Reminders:     reminders,
	}, nil
}

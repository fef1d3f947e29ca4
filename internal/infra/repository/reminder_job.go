package repository

import (
	"context"
	"time"

	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/infra/repository/converter"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/pkg/pgconv"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxLastErrorLength = 1000

type ReminderJobQueries interface {
	CreateReminderJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReminderJobParams) error
	CancelPendingReminderJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelPendingReminderJobsParams) (int64, error)
	ListPendingReminderJobsBySchedule(ctx context.Context, db sqlc.DBTX, scheduleID uuid.UUID) ([]sqlc.ReminderJobs, error)
	ClaimDueReminderJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueReminderJobsParams) ([]sqlc.ReminderJobs, error)
	RequeueStuckReminderJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.RequeueStuckReminderJobsParams) (int64, error)
	MarkReminderJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReminderJobSentParams) error
	MarkReminderJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReminderJobFailedParams) (string, error)
	MarkReminderJobCanceled(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReminderJobCanceledParams) error
}

type ReminderJobRepository struct {
	queries ReminderJobQueries
}

func NewReminderJobRepository(queries ReminderJobQueries) *ReminderJobRepository {
	return &ReminderJobRepository{queries: queries}
}

func (r *ReminderJobRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, plan shared.ReminderPlan, now time.Time) error {
	for _, reminder := range plan.Reminders {
		params := converter.ReminderToCreateParams(plan, reminder, now)
		if err := r.queries.CreateReminderJob(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to enqueue reminder job", err)
		}
	}
	return nil
}

// CancelPending cancels queued and in-flight jobs and returns how many; zero is not an error.
func (r *ReminderJobRepository) CancelPending(ctx context.Context, tx sqlc.DBTX, scheduleID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.CancelPendingReminderJobs(ctx, tx, sqlc.CancelPendingReminderJobsParams{
		ScheduleID: scheduleID,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reminder jobs", err)
	}
	return n, nil
}

func (r *ReminderJobRepository) ListPending(ctx context.Context, tx sqlc.DBTX, scheduleID uuid.UUID) ([]shared.ReminderJob, error) {
	rows, err := r.queries.ListPendingReminderJobsBySchedule(ctx, tx, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reminder jobs", err)
	}
	return converter.ReminderJobsFromRows(rows), nil
}

func (r *ReminderJobRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.ReminderJob, error) {
	rows, err := r.queries.ClaimDueReminderJobs(ctx, tx, sqlc.ClaimDueReminderJobsParams{
		Now: pgconv.TimeToPgtype(now),
		Lim: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due reminder jobs", err)
	}
	return converter.ReminderJobsFromRows(rows), nil
}

func (r *ReminderJobRepository) RequeueStuck(ctx context.Context, tx sqlc.DBTX, now, stuckBefore time.Time) (int64, error) {
	n, err := r.queries.RequeueStuckReminderJobs(ctx, tx, sqlc.RequeueStuckReminderJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		StuckBefore: pgconv.TimeToPgtype(stuckBefore),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue stuck reminder jobs", err)
	}
	return n, nil
}

func (r *ReminderJobRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, sentAt time.Time) error {
	err := r.queries.MarkReminderJobSent(ctx, tx, sqlc.MarkReminderJobSentParams{
		ID:     id,
		SentAt: pgconv.TimeToPgtype(sentAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder job sent", err)
	}
	return nil
}

// MarkFailed requeues the job until maxAttempts is reached and reports the resulting status.
// A job that is no longer claimed (canceled or requeued meanwhile) yields a not-found error.
func (r *ReminderJobRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32, now time.Time) (shared.ReminderJobStatus, error) {
	if len(reason) > maxLastErrorLength {
		reason = reason[:maxLastErrorLength]
	}
	status, err := r.queries.MarkReminderJobFailed(ctx, tx, sqlc.MarkReminderJobFailedParams{
		MaxAttempts: maxAttempts,
		LastError:   pgconv.StringToPgtype(reason),
		Now:         pgconv.TimeToPgtype(now),
		ID:          id,
	})
	if err != nil {
		return "", infra.WrapRepoErr("failed to mark reminder job failed", err)
	}
	return shared.ReminderJobStatus(status), nil
}

func (r *ReminderJobRepository) MarkCanceled(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkReminderJobCanceled(ctx, tx, sqlc.MarkReminderJobCanceledParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder job canceled", err)
	}
	return nil
}

package shared

import (
	"context"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Schedules() ScheduleRepository
	Reminders() ReminderJobRepository
	Devices() DeviceTokenRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ScheduleByID(ctx context.Context, id uuid.UUID) (*ScheduleSnapshot, error)
	// Locks the row until the surrounding transaction ends.
	ScheduleByIDForUpdate(ctx context.Context, id uuid.UUID) (*ScheduleSnapshot, error)
	DeviceTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *schedule.ScheduledRecipe) (uuid.UUID, error)
	UpdateDate(ctx context.Context, tx sqlc.DBTX, s *schedule.ScheduledRecipe) error
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, s *schedule.ScheduledRecipe) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ReminderJobRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, plan ReminderPlan, now time.Time) error
	CancelPending(ctx context.Context, tx sqlc.DBTX, scheduleID uuid.UUID, now time.Time) (int64, error)
	ListPending(ctx context.Context, tx sqlc.DBTX, scheduleID uuid.UUID) ([]ReminderJob, error)
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]ReminderJob, error)
	RequeueStuck(ctx context.Context, tx sqlc.DBTX, now, stuckBefore time.Time) (int64, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, sentAt time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32, now time.Time) (ReminderJobStatus, error)
	MarkCanceled(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
}

type DeviceTokenRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, device DeviceToken, now time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, token string) error
	DeleteTokens(ctx context.Context, tx sqlc.DBTX, tokens []string) (int64, error)
}

// ReminderDispatcher hands planned reminders to whatever delivers them.
// Cancel is idempotent: cancelling a schedule with nothing pending is not an error.
type ReminderDispatcher interface {
	Schedule(ctx context.Context, plan ReminderPlan) error
	Cancel(ctx context.Context, scheduleID uuid.UUID) error
}

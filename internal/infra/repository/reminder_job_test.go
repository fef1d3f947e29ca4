//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/infra/repository"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/usecase/shared"
	repositorymock "recipe-scheduler/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReminderJobRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	planner := schedule.NewPlanner(9, time.UTC)
	scheduleID := uuid.New()
	userID := uuid.New()
	cook := time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)

	plan := shared.ReminderPlan{
		ScheduleID:   scheduleID,
		UserID:       userID,
		ScheduledFor: cook,
		Reminders:    planner.ComputeReminders(scheduleID, "Curry", cook, now),
	}
	require.Len(t, plan.Reminders, 5)

	t.Run("success: one row per reminder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
		var offsets []int32
		mockQueries.EXPECT().CreateReminderJob(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReminderJobParams) error {
				assert.Equal(t, scheduleID, arg.ScheduleID)
				assert.Equal(t, userID, arg.UserID)
				assert.True(t, arg.ScheduledFor.Time.Equal(cook))
				offsets = append(offsets, arg.OffsetDays)
				return nil
			}).Times(5)

		repo := repository.NewReminderJobRepository(mockQueries)
		require.NoError(t, repo.Enqueue(ctx, &mockDBTX{}, plan, now))
		assert.Equal(t, []int32{7, 3, 2, 1, 0}, offsets)
	})

	t.Run("error: pending duplicate stops the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
		dup := &pgconn.PgError{Code: "23505", Message: "uq_reminder_jobs_pending"}
		mockQueries.EXPECT().CreateReminderJob(ctx, gomock.Any(), gomock.Any()).Return(dup)

		repo := repository.NewReminderJobRepository(mockQueries)
		err := repo.Enqueue(ctx, &mockDBTX{}, plan, now)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReminderJobRepository_CancelPending(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	testCases := []struct {
		name       string
		rows       int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: queued jobs canceled", rows: 3},
		{name: "success: nothing pending is not an error", rows: 0},
		{name: "error: database error", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scheduleID := uuid.New()
			mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
			mockQueries.EXPECT().CancelPendingReminderJobs(ctx, gomock.Any(), sqlc.CancelPendingReminderJobsParams{
				ScheduleID: scheduleID,
				UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
			}).Return(tc.rows, tc.err)

			repo := repository.NewReminderJobRepository(mockQueries)
			n, err := repo.CancelPending(ctx, &mockDBTX{}, scheduleID, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, n)
		})
	}
}

func TestReminderJobRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	rows := []sqlc.ReminderJobs{
		{ID: uuid.New(), ScheduleID: uuid.New(), OffsetDays: 1, Title: "Reminder", Status: "sending", Attempts: 1,
			FiresAt: pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}},
	}
	mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
	mockQueries.EXPECT().ClaimDueReminderJobs(ctx, gomock.Any(), sqlc.ClaimDueReminderJobsParams{
		Now: pgtype.Timestamptz{Time: now, Valid: true},
		Lim: 50,
	}).Return(rows, nil)

	repo := repository.NewReminderJobRepository(mockQueries)
	jobs, err := repo.ClaimDue(ctx, &mockDBTX{}, now, 50)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, rows[0].ID, jobs[0].ID)
	assert.Equal(t, 1, jobs[0].OffsetDays)
	assert.Equal(t, shared.ReminderSending, jobs[0].Status)
	assert.Nil(t, jobs[0].LastError)
}

func TestReminderJobRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reports requeue status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
		mockQueries.EXPECT().MarkReminderJobFailed(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkReminderJobFailedParams) (string, error) {
				assert.Equal(t, int32(3), arg.MaxAttempts)
				assert.Equal(t, "fcm unavailable", arg.LastError.String)
				return "queued", nil
			})

		repo := repository.NewReminderJobRepository(mockQueries)
		status, err := repo.MarkFailed(ctx, &mockDBTX{}, uuid.New(), "fcm unavailable", 3, time.Now())
		require.NoError(t, err)
		assert.Equal(t, shared.ReminderQueued, status)
	})

	t.Run("success: long reason is truncated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
		mockQueries.EXPECT().MarkReminderJobFailed(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkReminderJobFailedParams) (string, error) {
				assert.Len(t, arg.LastError.String, 1000)
				return "failed", nil
			})

		repo := repository.NewReminderJobRepository(mockQueries)
		status, err := repo.MarkFailed(ctx, &mockDBTX{}, uuid.New(), strings.Repeat("x", 5000), 3, time.Now())
		require.NoError(t, err)
		assert.Equal(t, shared.ReminderFailed, status)
	})

	t.Run("error: job canceled while the send was in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
		mockQueries.EXPECT().MarkReminderJobFailed(ctx, gomock.Any(), gomock.Any()).Return("", pgx.ErrNoRows)

		repo := repository.NewReminderJobRepository(mockQueries)
		_, err := repo.MarkFailed(ctx, &mockDBTX{}, uuid.New(), "x", 3, time.Now())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReminderJobQueries(ctrl)
		mockQueries.EXPECT().MarkReminderJobFailed(ctx, gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

		repo := repository.NewReminderJobRepository(mockQueries)
		_, err := repo.MarkFailed(ctx, &mockDBTX{}, uuid.New(), "x", 3, time.Now())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

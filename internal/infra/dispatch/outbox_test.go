//go:build unit

package dispatch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra/dispatch"
	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/usecase/shared"
	"recipe-scheduler/tests/common/builder"
	"recipe-scheduler/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*memstore.Store, *clock.MockClock, *dispatch.OutboxDispatcher, shared.ScheduleSnapshot) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, time.March, 1, 8, 0, 0, 0, builder.JST))
	store := memstore.New()
	snap := builder.NewScheduleBuilder().With(func(b *builder.ScheduleBuilder) {
		b.ScheduledDate = time.Date(2025, time.March, 11, 9, 0, 0, 0, builder.JST)
	}).BuildSnapshot()
	store.Seed(snap)
	d := dispatch.NewOutboxDispatcher(store, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return store, clk, d, snap
}

func planFor(snap shared.ScheduleSnapshot, now time.Time) shared.ReminderPlan {
	planner := schedule.NewPlanner(9, builder.JST)
	return shared.ReminderPlan{
		ScheduleID:   snap.ID,
		UserID:       snap.UserID,
		ScheduledFor: snap.ScheduledDate,
		Reminders:    planner.ComputeReminders(snap.ID, snap.Recipe.Name, snap.ScheduledDate, now),
	}
}

func TestOutboxDispatcher_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success: queues one job per reminder", func(t *testing.T) {
		store, clk, d, snap := setup(t)

		require.NoError(t, d.Schedule(ctx, planFor(snap, clk.Now())))

		jobs := store.JobsWithStatus(snap.ID, shared.ReminderQueued)
		require.Len(t, jobs, 5)
		assert.Equal(t, 7, jobs[0].OffsetDays)
		assert.Equal(t, "Chicken Curry is planned in 1 week", jobs[0].Body)
		assert.Equal(t, 0, jobs[4].OffsetDays)
		assert.Equal(t, "Today is the day to cook Chicken Curry", jobs[4].Body)
	})

	t.Run("success: scheduling again replaces queued jobs", func(t *testing.T) {
		store, clk, d, snap := setup(t)
		plan := planFor(snap, clk.Now())

		require.NoError(t, d.Schedule(ctx, plan))
		require.NoError(t, d.Schedule(ctx, plan))

		assert.Len(t, store.JobsWithStatus(snap.ID, shared.ReminderQueued), 5)
		assert.Len(t, store.JobsWithStatus(snap.ID, shared.ReminderCanceled), 5)
	})

	t.Run("error: failed insert rolls back the cancellation", func(t *testing.T) {
		store, clk, d, snap := setup(t)
		plan := planFor(snap, clk.Now())
		require.NoError(t, d.Schedule(ctx, plan))

		store.FailEnqueue = errors.New("insert failed")
		err := d.Schedule(ctx, plan)

		require.Error(t, err)
		assert.Len(t, store.JobsWithStatus(snap.ID, shared.ReminderQueued), 5)
		assert.Empty(t, store.JobsWithStatus(snap.ID, shared.ReminderCanceled))
	})
}

func TestOutboxDispatcher_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: queued jobs canceled", func(t *testing.T) {
		store, clk, d, snap := setup(t)
		require.NoError(t, d.Schedule(ctx, planFor(snap, clk.Now())))

		require.NoError(t, d.Cancel(ctx, snap.ID))
		assert.Empty(t, store.JobsWithStatus(snap.ID, shared.ReminderQueued))
	})

	t.Run("success: nothing pending", func(t *testing.T) {
		_, _, d, snap := setup(t)

		assert.NoError(t, d.Cancel(ctx, snap.ID))
		assert.NoError(t, d.Cancel(ctx, snap.ID))
	})

	t.Run("error: store failure is reported", func(t *testing.T) {
		store, _, d, snap := setup(t)
		store.FailReminderWrite = errors.New("connection reset")

		assert.Error(t, d.Cancel(ctx, snap.ID))
	})
}

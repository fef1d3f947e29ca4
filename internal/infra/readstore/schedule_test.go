//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/infra/readstore"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/tests/common/builder"
	readstoremock "recipe-scheduler/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// FindByID Tests
// =============================================================================

func TestScheduleReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewScheduleBuilder()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockScheduleViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: schedule found",
			setupMock: func(mock *readstoremock.MockScheduleViewQueries) {
				mock.EXPECT().GetScheduledRecipe(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: schedule not found",
			setupMock: func(mock *readstoremock.MockScheduleViewQueries) {
				mock.EXPECT().GetScheduledRecipe(ctx, gomock.Any(), b.ID).Return(sqlc.ScheduledRecipes{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockScheduleViewQueries) {
				mock.EXPECT().GetScheduledRecipe(ctx, gomock.Any(), b.ID).Return(sqlc.ScheduledRecipes{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: corrupt recipe snapshot",
			setupMock: func(mock *readstoremock.MockScheduleViewQueries) {
				row := b.BuildInfra()
				row.RecipeSnapshot = []byte("{not json")
				mock.EXPECT().GetScheduledRecipe(ctx, gomock.Any(), b.ID).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
			store := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, b.ID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			require.NotNil(t, result)
			assert.Equal(t, b.ID, result.ID)
			assert.Equal(t, b.UserID, result.UserID)
			assert.Equal(t, "Chicken Curry", result.Recipe.Name)
			assert.Equal(t, "https://cdn.example.com/curry.jpg", result.Recipe.ImageURL)
			assert.Equal(t, 4, result.Recipe.Servings)
			assert.True(t, result.ScheduledDate.Equal(b.ScheduledDate))
			assert.Nil(t, result.CompletedAt)
		})
	}
}

func TestScheduleReadStore_FindByID_FallsBackToNameColumn(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := builder.NewScheduleBuilder()
	row := b.BuildInfra()
	row.RecipeSnapshot = []byte(`{}`)

	mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
	mockQueries.EXPECT().GetScheduledRecipe(ctx, gomock.Any(), b.ID).Return(row, nil)

	result, err := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.RecipeName, result.Recipe.Name)
}

// =============================================================================
// FindPendingReminders Tests
// =============================================================================

func TestScheduleReadStore_FindPendingReminders(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduleID := uuid.New()
	firesAt := time.Date(2025, time.March, 10, 9, 0, 0, 0, builder.JST)
	rows := []sqlc.ReminderJobs{
		{ID: uuid.New(), ScheduleID: scheduleID, OffsetDays: 1, Title: "Reminder", Body: "Curry is planned for tomorrow",
			Status: "queued", FiresAt: pgtype.Timestamptz{Time: firesAt, Valid: true}},
		{ID: uuid.New(), ScheduleID: scheduleID, OffsetDays: 0, Title: "Reminder", Body: "Today is the day to cook Curry",
			Status: "sending", FiresAt: pgtype.Timestamptz{Time: firesAt.AddDate(0, 0, 1), Valid: true}},
	}

	mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
	mockQueries.EXPECT().ListPendingReminderJobsBySchedule(ctx, gomock.Any(), scheduleID).Return(rows, nil)

	result, err := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{}).FindPendingReminders(ctx, scheduleID)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].OffsetDays)
	assert.True(t, result[0].FiresAt.Equal(firesAt))
	assert.Equal(t, "sending", result[1].Status)
}

// =============================================================================
// Listing Tests
// =============================================================================

func TestScheduleReadStore_FindByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first page passes filter and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		first := builder.NewScheduleBuilder().With(func(b *builder.ScheduleBuilder) { b.UserID = userID })
		second := builder.NewScheduleBuilder().With(func(b *builder.ScheduleBuilder) {
			b.UserID = userID
			b.ImageURL = ""
		})

		mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
		mockQueries.EXPECT().ListScheduledRecipesByUserFirstPage(ctx, gomock.Any(), sqlc.ListScheduledRecipesByUserFirstPageParams{
			UserID:           userID,
			IncludeCompleted: true,
			Lim:              21,
		}).Return([]sqlc.ScheduledRecipes{first.BuildInfra(), second.BuildInfra()}, nil)

		items, err := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{}).FindByUserFirstPage(ctx, userID, true, 21)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, first.ID, items[0].ID)
		assert.Equal(t, "https://cdn.example.com/curry.jpg", items[0].ImageURL)
		assert.Empty(t, items[1].ImageURL)
	})

	t.Run("keyset page passes cursor position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		afterDate := time.Date(2025, time.April, 1, 9, 0, 0, 0, builder.JST)
		afterID := uuid.New()

		mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
		mockQueries.EXPECT().ListScheduledRecipesByUserKeyset(ctx, gomock.Any(), sqlc.ListScheduledRecipesByUserKeysetParams{
			UserID:           userID,
			IncludeCompleted: false,
			AfterDate:        pgtype.Timestamptz{Time: afterDate, Valid: true},
			AfterID:          afterID,
			Lim:              11,
		}).Return([]sqlc.ScheduledRecipes{}, nil)

		items, err := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{}).FindByUserKeyset(ctx, userID, false, afterDate, afterID, 11)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("database error is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
		mockQueries.EXPECT().ListScheduledRecipesByUserFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		items, err := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{}).FindByUserFirstPage(ctx, userID, false, 20)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, items)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

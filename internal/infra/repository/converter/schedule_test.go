//go:build unit

package converter_test

import (
	"testing"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra/repository/converter"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecipe(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		in := schedule.RecipeSnapshotInput{
			RecipeID:     "edamam-123",
			Name:         "Miso Soup",
			ImageURL:     "https://img.example.com/miso.webp",
			Source:       "edamam",
			Servings:     2,
			TotalTimeMin: 15,
		}
		raw, err := converter.EncodeRecipe(in)
		require.NoError(t, err)

		got, err := converter.DecodeRecipe(raw, "ignored")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(in, got))
	})

	t.Run("empty document falls back to column name", func(t *testing.T) {
		got, err := converter.DecodeRecipe([]byte(`{}`), "Curry")
		require.NoError(t, err)
		assert.Equal(t, "Curry", got.Name)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := converter.DecodeRecipe([]byte(`{"name":`), "Curry")
		assert.Error(t, err)
	})
}

func TestScheduleRowToSnapshot(t *testing.T) {
	created := time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)
	completed := created.Add(48 * time.Hour)
	row := sqlc.ScheduledRecipes{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		RecipeName:     "Curry",
		RecipeSnapshot: []byte(`{"name":"Curry","servings":4}`),
		ScheduledDate:  pgconv.TimeToPgtype(created.Add(72 * time.Hour)),
		IsCompleted:    true,
		CompletedAt:    pgconv.TimeToPgtype(completed),
		CreatedAt:      pgconv.TimeToPgtype(created),
		UpdatedAt:      pgconv.TimeToPgtype(completed),
	}

	snap, err := converter.ScheduleRowToSnapshot(row)
	require.NoError(t, err)

	assert.Equal(t, row.ID, snap.ID)
	assert.Equal(t, 4, snap.Recipe.Servings)
	assert.True(t, snap.IsCompleted)
	require.NotNil(t, snap.CompletedAt)
	assert.True(t, completed.Equal(*snap.CompletedAt))

	row.CompletedAt = pgtype.Timestamptz{}
	row.IsCompleted = false
	snap, err = converter.ScheduleRowToSnapshot(row)
	require.NoError(t, err)
	assert.Nil(t, snap.CompletedAt)
}

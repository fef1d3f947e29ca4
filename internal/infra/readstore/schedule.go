package readstore

import (
	"context"
	"time"

	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/infra/repository/converter"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/pkg/pgconv"
	"recipe-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleViewQueries interface {
	GetScheduledRecipe(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ScheduledRecipes, error)
	ListPendingReminderJobsBySchedule(ctx context.Context, db sqlc.DBTX, scheduleID uuid.UUID) ([]sqlc.ReminderJobs, error)
	ListScheduledRecipesByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListScheduledRecipesByUserFirstPageParams) ([]sqlc.ScheduledRecipes, error)
	ListScheduledRecipesByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListScheduledRecipesByUserKeysetParams) ([]sqlc.ScheduledRecipes, error)
}

type ScheduleReadStore struct {
	queries ScheduleViewQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleViewQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ScheduleView, error) {
	row, err := r.queries.GetScheduledRecipe(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}
	return rowToScheduleView(row)
}

func (r *ScheduleReadStore) FindPendingReminders(ctx context.Context, scheduleID uuid.UUID) ([]queries.ReminderView, error) {
	rows, err := r.queries.ListPendingReminderJobsBySchedule(ctx, r.db, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending reminders", err)
	}

	result := make([]queries.ReminderView, len(rows))
	for i, row := range rows {
		result[i] = queries.ReminderView{
			OffsetDays: int(row.OffsetDays),
			FiresAt:    pgconv.TimeFromPgtype(row.FiresAt),
			Title:      row.Title,
			Body:       row.Body,
			Status:     row.Status,
		}
	}
	return result, nil
}

func (r *ScheduleReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, includeCompleted bool, limit int32) ([]*queries.ScheduleListItem, error) {
	params := sqlc.ListScheduledRecipesByUserFirstPageParams{
		UserID:           userID,
		IncludeCompleted: includeCompleted,
		Lim:              limit,
	}

	rows, err := r.queries.ListScheduledRecipesByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find schedules first page", err)
	}
	return toScheduleListItems(rows), nil
}

func (r *ScheduleReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, includeCompleted bool, afterDate time.Time, afterID uuid.UUID, limit int32) ([]*queries.ScheduleListItem, error) {
	params := sqlc.ListScheduledRecipesByUserKeysetParams{
		UserID:           userID,
		IncludeCompleted: includeCompleted,
		AfterDate:        pgconv.TimeToPgtype(afterDate),
		AfterID:          afterID,
		Lim:              limit,
	}

	rows, err := r.queries.ListScheduledRecipesByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find schedules keyset", err)
	}
	return toScheduleListItems(rows), nil
}

func rowToScheduleView(row sqlc.ScheduledRecipes) (*queries.ScheduleView, error) {
	recipe, err := converter.DecodeRecipe(row.RecipeSnapshot, row.RecipeName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode recipe snapshot", err, infra.KindDBFailure)
	}
	return &queries.ScheduleView{
		ID:     row.ID,
		UserID: row.UserID,
		Recipe: queries.RecipeView{
			RecipeID:     recipe.RecipeID,
			Name:         recipe.Name,
			ImageURL:     recipe.ImageURL,
			Source:       recipe.Source,
			Servings:     recipe.Servings,
			TotalTimeMin: recipe.TotalTimeMin,
		},
		ScheduledDate: pgconv.TimeFromPgtype(row.ScheduledDate),
		IsCompleted:   row.IsCompleted,
		CompletedAt:   pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// List rows only need the image, so a broken snapshot degrades to the name column.
func toScheduleListItems(rows []sqlc.ScheduledRecipes) []*queries.ScheduleListItem {
	result := make([]*queries.ScheduleListItem, len(rows))
	for i, row := range rows {
		item := &queries.ScheduleListItem{
			ID:            row.ID,
			UserID:        row.UserID,
			RecipeName:    row.RecipeName,
			ScheduledDate: pgconv.TimeFromPgtype(row.ScheduledDate),
			IsCompleted:   row.IsCompleted,
			CompletedAt:   pgconv.TimePtrFromPgtype(row.CompletedAt),
		}
		if recipe, err := converter.DecodeRecipe(row.RecipeSnapshot, row.RecipeName); err == nil {
			item.ImageURL = recipe.ImageURL
		}
		result[i] = item
	}
	return result
}

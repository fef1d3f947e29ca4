package repository

import (
	"context"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/infra"
	"recipe-scheduler/internal/infra/repository/converter"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleWriteQueries interface {
	CreateScheduledRecipe(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduledRecipeParams) (uuid.UUID, error)
	UpdateScheduledDate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateScheduledDateParams) (int64, error)
	MarkScheduledRecipeCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkScheduledRecipeCompletedParams) (int64, error)
	DeleteScheduledRecipe(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ScheduleRepository struct {
	queries ScheduleWriteQueries
}

func NewScheduleRepository(queries ScheduleWriteQueries) *ScheduleRepository {
	return &ScheduleRepository{queries: queries}
}

func (r *ScheduleRepository) Create(ctx context.Context, tx sqlc.DBTX, s *schedule.ScheduledRecipe) (uuid.UUID, error) {
	params, err := converter.ScheduleToCreateParams(s)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode recipe snapshot", err, infra.KindDBFailure)
	}
	id, err := r.queries.CreateScheduledRecipe(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create scheduled recipe", err)
	}
	return id, nil
}

// UpdateDate only touches active schedules.
func (r *ScheduleRepository) UpdateDate(ctx context.Context, tx sqlc.DBTX, s *schedule.ScheduledRecipe) error {
	n, err := r.queries.UpdateScheduledDate(ctx, tx, sqlc.UpdateScheduledDateParams{
		ID:            s.ID(),
		ScheduledDate: pgconv.TimeToPgtype(s.ScheduledDate()),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update scheduled date", err)
	}
	if n == 0 {
		return infra.NotFound("active schedule not found")
	}
	return nil
}

func (r *ScheduleRepository) MarkCompleted(ctx context.Context, tx sqlc.DBTX, s *schedule.ScheduledRecipe) error {
	completedAt := s.UpdatedAt()
	if s.CompletedAt() != nil {
		completedAt = *s.CompletedAt()
	}
	n, err := r.queries.MarkScheduledRecipeCompleted(ctx, tx, sqlc.MarkScheduledRecipeCompletedParams{
		ID:          s.ID(),
		CompletedAt: pgconv.TimeToPgtype(completedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark schedule completed", err)
	}
	if n == 0 {
		return infra.NotFound("active schedule not found")
	}
	return nil
}

// Pending reminder jobs go with the row (ON DELETE CASCADE).
func (r *ScheduleRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteScheduledRecipe(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete scheduled recipe", err)
	}
	if n == 0 {
		return infra.NotFound("schedule not found")
	}
	return nil
}

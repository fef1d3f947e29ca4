package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/pkg/pgconv"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// recipeDoc is the JSONB layout of scheduled_recipes.recipe_snapshot.
type recipeDoc struct {
	RecipeID     string `json:"recipe_id,omitempty"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url,omitempty"`
	Source       string `json:"source,omitempty"`
	Servings     int    `json:"servings,omitempty"`
	TotalTimeMin int    `json:"total_time_min,omitempty"`
}

func EncodeRecipe(in schedule.RecipeSnapshotInput) ([]byte, error) {
	return json.Marshal(recipeDoc(in))
}

// DecodeRecipe falls back to the recipe_name column when the document has no name.
func DecodeRecipe(raw []byte, fallbackName string) (schedule.RecipeSnapshotInput, error) {
	var doc recipeDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return schedule.RecipeSnapshotInput{}, fmt.Errorf("decode recipe snapshot: %w", err)
		}
	}
	if doc.Name == "" {
		doc.Name = fallbackName
	}
	return schedule.RecipeSnapshotInput(doc), nil
}

func ScheduleToCreateParams(s *schedule.ScheduledRecipe) (sqlc.CreateScheduledRecipeParams, error) {
	raw, err := EncodeRecipe(s.Recipe().Input())
	if err != nil {
		return sqlc.CreateScheduledRecipeParams{}, err
	}
	return sqlc.CreateScheduledRecipeParams{
		ID:             s.ID(),
		UserID:         s.UserID(),
		RecipeName:     s.RecipeName(),
		RecipeSnapshot: raw,
		ScheduledDate:  pgconv.TimeToPgtype(s.ScheduledDate()),
		CreatedAt:      pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(s.UpdatedAt()),
	}, nil
}

func ScheduleRowToSnapshot(row sqlc.ScheduledRecipes) (*shared.ScheduleSnapshot, error) {
	recipe, err := DecodeRecipe(row.RecipeSnapshot, row.RecipeName)
	if err != nil {
		return nil, err
	}
	return &shared.ScheduleSnapshot{
		ID:            row.ID,
		UserID:        row.UserID,
		Recipe:        recipe,
		ScheduledDate: pgconv.TimeFromPgtype(row.ScheduledDate),
		IsCompleted:   row.IsCompleted,
		CompletedAt:   pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func ReminderToCreateParams(plan shared.ReminderPlan, r schedule.ReminderInstant, now time.Time) sqlc.CreateReminderJobParams {
	return sqlc.CreateReminderJobParams{
		ID:           uuid.New(),
		ScheduleID:   plan.ScheduleID,
		UserID:       plan.UserID,
		OffsetDays:   int32(r.OffsetDays),
		Title:        r.Title,
		Body:         r.Body,
		FiresAt:      pgconv.TimeToPgtype(r.FiresAt),
		ScheduledFor: pgconv.TimeToPgtype(plan.ScheduledFor),
		CreatedAt:    pgconv.TimeToPgtype(now),
	}
}

func ReminderJobFromRow(row sqlc.ReminderJobs) shared.ReminderJob {
	return shared.ReminderJob{
		ID:           row.ID,
		ScheduleID:   row.ScheduleID,
		UserID:       row.UserID,
		OffsetDays:   int(row.OffsetDays),
		Title:        row.Title,
		Body:         row.Body,
		FiresAt:      pgconv.TimeFromPgtype(row.FiresAt),
		ScheduledFor: pgconv.TimeFromPgtype(row.ScheduledFor),
		Status:       shared.ReminderJobStatus(row.Status),
		Attempts:     row.Attempts,
		LastError:    pgconv.StringPtrFromPgtype(row.LastError),
	}
}

func ReminderJobsFromRows(rows []sqlc.ReminderJobs) []shared.ReminderJob {
	out := make([]shared.ReminderJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReminderJobFromRow(row))
	}
	return out
}

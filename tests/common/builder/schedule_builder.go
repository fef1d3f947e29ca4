//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	reqdto "recipe-scheduler/internal/handler/dto/request"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/usecase/queries"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const DateLayout = "2006-01-02"

var JST = time.FixedZone("JST", 9*60*60)

type ScheduleBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RecipeID      string
	RecipeName    string
	ImageURL      string
	Servings      int
	ScheduledDate time.Time
	IsCompleted   bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewScheduleBuilder() *ScheduleBuilder {
	now := time.Now().In(JST)
	cook := now.AddDate(0, 0, 10)
	return &ScheduleBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		RecipeID:      "recipe-123",
		RecipeName:    "Chicken Curry",
		ImageURL:      "https://cdn.example.com/curry.jpg",
		Servings:      4,
		ScheduledDate: time.Date(cook.Year(), cook.Month(), cook.Day(), 9, 0, 0, 0, JST),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(b)
	return b
}

func (b *ScheduleBuilder) Completed(at time.Time) *ScheduleBuilder {
	b.IsCompleted = true
	b.CompletedAt = &at
	return b
}

func (b *ScheduleBuilder) RecipeInput() schedule.RecipeSnapshotInput {
	return schedule.RecipeSnapshotInput{
		RecipeID: b.RecipeID,
		Name:     b.RecipeName,
		ImageURL: b.ImageURL,
		Servings: b.Servings,
	}
}

// Build methods
func (b *ScheduleBuilder) BuildSnapshot() shared.ScheduleSnapshot {
	return shared.ScheduleSnapshot{
		ID:            b.ID,
		UserID:        b.UserID,
		Recipe:        b.RecipeInput(),
		ScheduledDate: b.ScheduledDate,
		IsCompleted:   b.IsCompleted,
		CompletedAt:   b.CompletedAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ScheduleBuilder) BuildInfra() sqlc.ScheduledRecipes {
	raw, _ := json.Marshal(map[string]any{
		"recipe_id": b.RecipeID,
		"name":      b.RecipeName,
		"image_url": b.ImageURL,
		"servings":  b.Servings,
	})
	row := sqlc.ScheduledRecipes{
		ID:             b.ID,
		UserID:         b.UserID,
		RecipeName:     b.RecipeName,
		RecipeSnapshot: raw,
		ScheduledDate:  pgtype.Timestamptz{Time: b.ScheduledDate, Valid: true},
		IsCompleted:    b.IsCompleted,
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.CompletedAt != nil {
		row.CompletedAt = pgtype.Timestamptz{Time: *b.CompletedAt, Valid: true}
	}
	return row
}

func (b *ScheduleBuilder) BuildCreateRequestDTO() reqdto.CreateScheduleRequest {
	return reqdto.CreateScheduleRequest{
		Recipe: reqdto.RecipeRequest{
			RecipeID: b.RecipeID,
			Name:     b.RecipeName,
			ImageURL: b.ImageURL,
			Servings: b.Servings,
		},
		ScheduledDate: b.ScheduledDate.Format(DateLayout),
	}
}

func (b *ScheduleBuilder) BuildViewQuery() *queries.ScheduleView {
	return &queries.ScheduleView{
		ID:     b.ID,
		UserID: b.UserID,
		Recipe: queries.RecipeView{
			RecipeID: b.RecipeID,
			Name:     b.RecipeName,
			ImageURL: b.ImageURL,
			Servings: b.Servings,
		},
		ScheduledDate:    b.ScheduledDate,
		IsCompleted:      b.IsCompleted,
		CompletedAt:      b.CompletedAt,
		Badge:            schedule.BadgeUpcoming.String(),
		PendingReminders: []queries.ReminderView{},
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *ScheduleBuilder) BuildListItem() *queries.ScheduleListItem {
	return &queries.ScheduleListItem{
		ID:            b.ID,
		UserID:        b.UserID,
		RecipeName:    b.RecipeName,
		ImageURL:      b.ImageURL,
		ScheduledDate: b.ScheduledDate,
		IsCompleted:   b.IsCompleted,
		CompletedAt:   b.CompletedAt,
	}
}

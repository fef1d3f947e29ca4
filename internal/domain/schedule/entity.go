package schedule

import (
	"time"

	"recipe-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock   clock.Clock
	Planner *Planner
}

type ScheduledRecipe struct {
	id            uuid.UUID
	userID        uuid.UUID
	recipe        RecipeSnapshot
	scheduledDate time.Time
	isCompleted   bool
	completedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewScheduledRecipe(services *Services, userID uuid.UUID, recipe RecipeSnapshot, date time.Time) (*ScheduledRecipe, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if recipe.Name() == "" {
		return nil, ErrEmptyRecipeName
	}

	now := services.Clock.Now()
	scheduledDate := services.Planner.Normalize(date)
	if !scheduledDate.After(now) {
		return nil, ErrScheduledDateNotFuture
	}

	return &ScheduledRecipe{
		id:            uuid.New(),
		userID:        userID,
		recipe:        recipe,
		scheduledDate: scheduledDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructScheduledRecipe(
	id, userID uuid.UUID,
	recipe RecipeSnapshot,
	scheduledDate time.Time,
	isCompleted bool,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *ScheduledRecipe {
	return &ScheduledRecipe{
		id:            id,
		userID:        userID,
		recipe:        recipe,
		scheduledDate: scheduledDate,
		isCompleted:   isCompleted,
		completedAt:   completedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *ScheduledRecipe) Reschedule(services *Services, date time.Time) error {
	if s.isCompleted {
		return ErrAlreadyCompleted
	}
	now := services.Clock.Now()
	scheduledDate := services.Planner.Normalize(date)
	if !scheduledDate.After(now) {
		return ErrScheduledDateNotFuture
	}
	s.scheduledDate = scheduledDate
	s.updatedAt = now
	return nil
}

func (s *ScheduledRecipe) MarkCompleted(now time.Time) error {
	if s.isCompleted {
		return ErrAlreadyCompleted
	}
	s.isCompleted = true
	completedAt := now
	s.completedAt = &completedAt
	s.updatedAt = now
	return nil
}

// PlanReminders returns nothing for a completed schedule.
func (s *ScheduledRecipe) PlanReminders(planner *Planner, now time.Time) []ReminderInstant {
	if s.isCompleted {
		return []ReminderInstant{}
	}
	return planner.ComputeReminders(s.id, s.recipe.Name(), s.scheduledDate, now)
}

func (s *ScheduledRecipe) Status() Status {
	if s.isCompleted {
		return StatusCompleted
	}
	return StatusActive
}

func (s *ScheduledRecipe) IsOwnedBy(userID uuid.UUID) bool {
	return s.userID == userID
}

func (s *ScheduledRecipe) ID() uuid.UUID            { return s.id }
func (s *ScheduledRecipe) UserID() uuid.UUID        { return s.userID }
func (s *ScheduledRecipe) Recipe() RecipeSnapshot   { return s.recipe }
func (s *ScheduledRecipe) RecipeName() string       { return s.recipe.Name() }
func (s *ScheduledRecipe) ScheduledDate() time.Time { return s.scheduledDate }
func (s *ScheduledRecipe) IsCompleted() bool        { return s.isCompleted }
func (s *ScheduledRecipe) CompletedAt() *time.Time  { return s.completedAt }
func (s *ScheduledRecipe) CreatedAt() time.Time     { return s.createdAt }
func (s *ScheduledRecipe) UpdatedAt() time.Time     { return s.updatedAt }

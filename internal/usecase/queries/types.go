package queries

import (
	"time"

	"github.com/google/uuid"
)

// RecipeView is the frozen recipe copy stored with a schedule.
type RecipeView struct {
	RecipeID     string `json:"recipe_id,omitempty"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url,omitempty"`
	Source       string `json:"source,omitempty"`
	Servings     int    `json:"servings,omitempty"`
	TotalTimeMin int    `json:"total_time_min,omitempty"`
}

type ReminderView struct {
	OffsetDays int       `json:"offset_days"`
	FiresAt    time.Time `json:"fires_at"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
}

// ScheduleView represents read-optimized schedule data
type ScheduleView struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	Recipe           RecipeView     `json:"recipe"`
	ScheduledDate    time.Time      `json:"scheduled_date"`
	IsCompleted      bool           `json:"is_completed"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	Badge            string         `json:"badge"`
	PendingReminders []ReminderView `json:"pending_reminders"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type ScheduleListItem struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	RecipeName    string     `json:"recipe_name"`
	ImageURL      string     `json:"image_url,omitempty"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Badge         string     `json:"badge"`
}

type ScheduleListFilter struct {
	IncludeCompleted bool
}

type PreviewView struct {
	ScheduledDate time.Time      `json:"scheduled_date"`
	Badge         string         `json:"badge"`
	Reminders     []ReminderView `json:"reminders"`
}

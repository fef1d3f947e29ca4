package response

import (
	"time"

	"recipe-scheduler/internal/usecase/commands"
	"recipe-scheduler/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type RecipeResponse struct {
	RecipeID     string `json:"recipe_id,omitempty"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url,omitempty"`
	Source       string `json:"source,omitempty"`
	Servings     int    `json:"servings,omitempty"`
	TotalTimeMin int    `json:"total_time_min,omitempty"`
}

type ReminderResponse struct {
	OffsetDays int       `json:"offset_days"`
	FiresAt    time.Time `json:"fires_at"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
}

type ScheduleResponse struct {
	ID               string             `json:"id"`
	Recipe           RecipeResponse     `json:"recipe"`
	ScheduledDate    string             `json:"scheduled_date"`
	ScheduledAt      time.Time          `json:"scheduled_at"`
	IsCompleted      bool               `json:"is_completed"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
	Status           string             `json:"status"`
	PendingReminders []ReminderResponse `json:"pending_reminders"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	// Only set on writes; false means the schedule was saved but its reminders were not.
	RemindersScheduled *bool `json:"reminders_scheduled,omitempty"`
}

type ScheduleListItemResponse struct {
	ID            string     `json:"id"`
	RecipeName    string     `json:"recipe_name"`
	ImageURL      string     `json:"image_url,omitempty"`
	ScheduledDate string     `json:"scheduled_date"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Status        string     `json:"status"`
}

type ScheduleListResponse struct {
	Schedules  []*ScheduleListItemResponse `json:"schedules"`
	NextCursor string                      `json:"next_cursor,omitempty"`
}

type CompleteScheduleResponse struct {
	ID                 string    `json:"id"`
	IsCompleted        bool      `json:"is_completed"`
	CompletedAt        time.Time `json:"completed_at"`
	RemindersCancelled bool      `json:"reminders_cancelled"`
}

type PreviewResponse struct {
	ScheduledDate string             `json:"scheduled_date"`
	ScheduledAt   time.Time          `json:"scheduled_at"`
	Status        string             `json:"status"`
	Reminders     []ReminderResponse `json:"reminders"`
}

func FromScheduleView(v *queries.ScheduleView) *ScheduleResponse {
	res := &ScheduleResponse{
		ID:               v.ID.String(),
		ScheduledDate:    v.ScheduledDate.Format(dateLayout),
		ScheduledAt:      v.ScheduledDate,
		IsCompleted:      v.IsCompleted,
		CompletedAt:      v.CompletedAt,
		Status:           v.Badge,
		PendingReminders: fromReminderViews(v.PendingReminders),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	_ = copier.Copy(&res.Recipe, &v.Recipe)
	return res
}

// WithDispatch records whether the write handed its reminders off successfully.
func (r *ScheduleResponse) WithDispatch(result *commands.ScheduleResult) *ScheduleResponse {
	ok := result.RemindersDispatched
	r.RemindersScheduled = &ok
	return r
}

func FromScheduleList(items []*queries.ScheduleListItem, next *queries.Cursor) *ScheduleListResponse {
	res := &ScheduleListResponse{Schedules: make([]*ScheduleListItemResponse, len(items))}
	for i, it := range items {
		item := &ScheduleListItemResponse{}
		_ = copier.Copy(item, it)
		item.ID = it.ID.String()
		item.ScheduledDate = it.ScheduledDate.Format(dateLayout)
		item.ScheduledAt = it.ScheduledDate
		item.Status = it.Badge
		res.Schedules[i] = item
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromCompleteResult(r *commands.ScheduleResult) *CompleteScheduleResponse {
	res := &CompleteScheduleResponse{
		ID:                 r.ScheduleID.String(),
		IsCompleted:        r.IsCompleted,
		RemindersCancelled: r.RemindersDispatched,
	}
	if r.CompletedAt != nil {
		res.CompletedAt = *r.CompletedAt
	}
	return res
}

func FromPreview(p *queries.PreviewView) *PreviewResponse {
	return &PreviewResponse{
		ScheduledDate: p.ScheduledDate.Format(dateLayout),
		ScheduledAt:   p.ScheduledDate,
		Status:        p.Badge,
		Reminders:     fromReminderViews(p.Reminders),
	}
}

func fromReminderViews(views []queries.ReminderView) []ReminderResponse {
	res := make([]ReminderResponse, 0, len(views))
	_ = copier.Copy(&res, &views)
	return res
}

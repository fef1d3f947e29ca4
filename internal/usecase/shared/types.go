package shared

import (
	"time"

	"recipe-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ScheduleSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Recipe        schedule.RecipeSnapshotInput
	ScheduledDate time.Time
	IsCompleted   bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *ScheduleSnapshot) ToDomain() (*schedule.ScheduledRecipe, error) {
	recipe, err := schedule.NewRecipeSnapshot(s.Recipe)
	if err != nil {
		return nil, err
	}
	return schedule.ReconstructScheduledRecipe(
		s.ID, s.UserID, recipe, s.ScheduledDate, s.IsCompleted, s.CompletedAt, s.CreatedAt, s.UpdatedAt,
	), nil
}

// ReminderPlan is the full set of reminders for one schedule at one cook date.
type ReminderPlan struct {
	ScheduleID   uuid.UUID
	UserID       uuid.UUID
	ScheduledFor time.Time
	Reminders    []schedule.ReminderInstant
}

type ReminderJobStatus string

const (
	ReminderQueued   ReminderJobStatus = "queued"
	ReminderSending  ReminderJobStatus = "sending"
	ReminderSent     ReminderJobStatus = "sent"
	ReminderFailed   ReminderJobStatus = "failed"
	ReminderCanceled ReminderJobStatus = "canceled"
)

type ReminderJob struct {
	ID           uuid.UUID
	ScheduleID   uuid.UUID
	UserID       uuid.UUID
	OffsetDays   int
	Title        string
	Body         string
	FiresAt      time.Time
	ScheduledFor time.Time
	Status       ReminderJobStatus
	Attempts     int32
	LastError    *string
}

type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
	PlatformUnknown DevicePlatform = "unknown"
)

func ParseDevicePlatform(s string) DevicePlatform {
	switch DevicePlatform(s) {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return DevicePlatform(s)
	default:
		return PlatformUnknown
	}
}

type DeviceToken struct {
	UserID   uuid.UUID
	Token    string
	Platform DevicePlatform
}

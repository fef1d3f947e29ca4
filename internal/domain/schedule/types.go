package schedule

import "errors"

var (
	ErrScheduledDateNotFuture = errors.New("scheduled date must be in the future")
	ErrAlreadyCompleted       = errors.New("schedule is already completed")
	ErrMissingOwner           = errors.New("schedule owner is required")

	ErrEmptyRecipeName   = errors.New("recipe name cannot be empty")
	ErrRecipeNameTooLong = errors.New("recipe name exceeds maximum length")
	ErrInvalidServings   = errors.New("servings cannot be negative")
	ErrInvalidTotalTime  = errors.New("total time cannot be negative")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Badge is the display classification of a cook date relative to now.
type Badge string

const (
	BadgeToday    Badge = "TODAY"
	BadgeUpcoming Badge = "UPCOMING"
	BadgePast     Badge = "PAST"
)

func (b Badge) String() string {
	return string(b)
}

func (b Badge) IsValid() bool {
	switch b {
	case BadgeToday, BadgeUpcoming, BadgePast:
		return true
	default:
		return false
	}
}

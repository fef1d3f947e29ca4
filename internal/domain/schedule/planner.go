package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const DefaultReminderHour = 9

// ReminderOffsets are the days before the cook date at which reminders fire,
// furthest first.
var ReminderOffsets = []int{7, 3, 2, 1, 0}

var reminderTemplates = map[int]string{
	7: "%s is planned in 1 week",
	3: "%s is planned in 3 days",
	2: "%s is planned in 2 days",
	1: "%s is planned for tomorrow",
	0: "Today is the day to cook %s",
}

type ReminderInstant struct {
	ScheduleID uuid.UUID
	OffsetDays int
	FiresAt    time.Time
	Title      string
	Body       string
}

// Planner computes reminder instants. All functions take now explicitly and never block.
type Planner struct {
	hour int
	loc  *time.Location
}

func NewPlanner(hour int, loc *time.Location) *Planner {
	if loc == nil {
		loc = time.UTC
	}
	if hour < 0 || hour > 23 {
		hour = DefaultReminderHour
	}
	return &Planner{hour: hour, loc: loc}
}

func (p *Planner) Location() *time.Location { return p.loc }
func (p *Planner) Hour() int                { return p.hour }

// Normalize moves t to the reminder hour of its calendar day in the planner's location.
func (p *Planner) Normalize(t time.Time) time.Time {
	y, m, d := t.In(p.loc).Date()
	return time.Date(y, m, d, p.hour, 0, 0, 0, p.loc)
}

// OnDate reads the civil date from date's own fields, so "2025-03-10" parsed as UTC
// midnight means March 10 in the planner's location.
func (p *Planner) OnDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, p.hour, 0, 0, 0, p.loc)
}

func (p *Planner) ComputeReminders(scheduleID uuid.UUID, recipeName string, scheduledDate, now time.Time) []ReminderInstant {
	cookAt := p.Normalize(scheduledDate)
	if !cookAt.After(now) {
		return []ReminderInstant{}
	}

	out := make([]ReminderInstant, 0, len(ReminderOffsets))
	for _, offset := range ReminderOffsets {
		firesAt := cookAt.AddDate(0, 0, -offset)
		if !firesAt.After(now) {
			continue
		}
		out = append(out, ReminderInstant{
			ScheduleID: scheduleID,
			OffsetDays: offset,
			FiresAt:    firesAt,
			Title:      recipeName,
			Body:       ReminderMessage(offset, recipeName),
		})
	}
	return out
}

func (p *Planner) Classify(scheduledDate, now time.Time) Badge {
	diff := math.Ceil(scheduledDate.Sub(now).Hours() / 24)
	switch {
	case diff == 0:
		return BadgeToday
	case diff < 0:
		return BadgePast
	default:
		return BadgeUpcoming
	}
}

func ReminderMessage(offsetDays int, recipeName string) string {
	tmpl, ok := reminderTemplates[offsetDays]
	if !ok {
		return fmt.Sprintf("%s is coming up in %d days", recipeName, offsetDays)
	}
	return fmt.Sprintf(tmpl, recipeName)
}

package request

import (
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/usecase/commands"
)

// DateLayout is the calendar-date format clients send; the time of day is assigned server side.
const DateLayout = "2006-01-02"

type RecipeRequest struct {
	RecipeID     string `json:"recipe_id" binding:"max=255"`
	Name         string `json:"name" binding:"required,max=200"`
	ImageURL     string `json:"image_url" binding:"omitempty,url,max=2048"`
	Source       string `json:"source" binding:"max=255"`
	Servings     int    `json:"servings" binding:"min=0,max=100"`
	TotalTimeMin int    `json:"total_time_min" binding:"min=0,max=10080"`
}

type CreateScheduleRequest struct {
	Recipe        RecipeRequest `json:"recipe" binding:"required"`
	ScheduledDate string        `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
}

type RescheduleRequest struct {
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
}

type PreviewQuery struct {
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
	RecipeName string `form:"recipe_name" binding:"max=200"`
}

type ListSchedulesQuery struct {
	IncludeCompleted bool   `form:"include_completed"`
	Limit            int    `form:"limit" binding:"omitempty,min=1"`
	After            string `form:"after"`
}

func (r RecipeRequest) ToInput() schedule.RecipeSnapshotInput {
	return schedule.RecipeSnapshotInput{
		RecipeID:     r.RecipeID,
		Name:         r.Name,
		ImageURL:     r.ImageURL,
		Source:       r.Source,
		Servings:     r.Servings,
		TotalTimeMin: r.TotalTimeMin,
	}
}

func (r *CreateScheduleRequest) ToInput() (commands.CreateScheduleInput, error) {
	date, err := ParseDate(r.ScheduledDate)
	if err != nil {
		return commands.CreateScheduleInput{}, err
	}
	return commands.CreateScheduleInput{Recipe: r.Recipe.ToInput(), Date: date}, nil
}

func (r *RescheduleRequest) Date() (time.Time, error) {
	return ParseDate(r.ScheduledDate)
}

func (q *PreviewQuery) ParsedDate() (time.Time, error) {
	return ParseDate(q.Date)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

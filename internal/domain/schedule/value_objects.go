package schedule

import (
	"strings"
	"unicode/utf8"
)

const MaxRecipeNameLength = 200

// RecipeSnapshot is a frozen copy of the recipe taken when the schedule is created.
// It never follows later edits or deletion of the source recipe.
type RecipeSnapshot struct {
	recipeID     string
	name         string
	imageURL     string
	source       string
	servings     int
	totalTimeMin int
}

type RecipeSnapshotInput struct {
	RecipeID     string
	Name         string
	ImageURL     string
	Source       string
	Servings     int
	TotalTimeMin int
}

func NewRecipeSnapshot(in RecipeSnapshotInput) (RecipeSnapshot, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return RecipeSnapshot{}, ErrEmptyRecipeName
	}
	if utf8.RuneCountInString(name) > MaxRecipeNameLength {
		return RecipeSnapshot{}, ErrRecipeNameTooLong
	}
	if in.Servings < 0 {
		return RecipeSnapshot{}, ErrInvalidServings
	}
	if in.TotalTimeMin < 0 {
		return RecipeSnapshot{}, ErrInvalidTotalTime
	}

	return RecipeSnapshot{
		recipeID:     strings.TrimSpace(in.RecipeID),
		name:         name,
		imageURL:     strings.TrimSpace(in.ImageURL),
		source:       strings.TrimSpace(in.Source),
		servings:     in.Servings,
		totalTimeMin: in.TotalTimeMin,
	}, nil
}

func (s RecipeSnapshot) RecipeID() string  { return s.recipeID }
func (s RecipeSnapshot) Name() string      { return s.name }
func (s RecipeSnapshot) ImageURL() string  { return s.imageURL }
func (s RecipeSnapshot) Source() string    { return s.source }
func (s RecipeSnapshot) Servings() int     { return s.servings }
func (s RecipeSnapshot) TotalTimeMin() int { return s.totalTimeMin }

func (s RecipeSnapshot) Input() RecipeSnapshotInput {
	return RecipeSnapshotInput{
		RecipeID:     s.recipeID,
		Name:         s.name,
		ImageURL:     s.imageURL,
		Source:       s.source,
		Servings:     s.servings,
		TotalTimeMin: s.totalTimeMin,
	}
}

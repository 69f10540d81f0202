package domain

import (
	"time"

	"github.com/google/uuid"
)

// Spark is an idea or question for couples to explore together in person.
type Spark struct {
	ID       uuid.UUID
	Text     string
	Category SparkCategory
	// OptionB is the second choice of a "Would You Rather" card.
	OptionB   string
	Vibe      PromptCategory
	Subtitle  string
	CreatedAt time.Time
}

// SparkCategoryCount is the number of sparks available in a category.
type SparkCategoryCount struct {
	Category SparkCategory
	Count    int
}

package programs

import "time"

type Kind string

const (
	KindWorkout Kind = "workout"
	KindDiet    Kind = "diet"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindWorkout || k == KindDiet
}

// Template is a reusable workout or diet plan. Content is free-form
// structured data owned by the dashboards, stored and returned as-is.
type Template struct {
	ID          int            `json:"id"`
	Kind        Kind           `json:"kind"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     map[string]any `json:"content"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

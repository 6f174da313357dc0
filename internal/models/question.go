package models

// Difficulty represents question difficulty
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsValid reports whether d is one of the known difficulty levels
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question represents a multiple-choice practice question
type Question struct {
	ID          int        `json:"id"`
	Topic       TopicRef   `json:"topic"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	AnswerIndex int        `json:"answerIndex"`
	Difficulty  Difficulty `json:"difficulty"`
}

// QuestionRequest represents a request to create or replace a question
type QuestionRequest struct {
	Topic       TopicRef   `json:"topic"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	AnswerIndex int        `json:"answerIndex"`
	Difficulty  Difficulty `json:"difficulty"`
}

// TopicGroup is an in-memory grouping of questions sharing a canonical slug
type TopicGroup struct {
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

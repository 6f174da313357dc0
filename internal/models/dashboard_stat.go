package models

// DashboardStat holds per-user, per-topic answer counters
//
// Attempted counts submissions, not distinct questions.
// Solved is a set of question IDs (sorted ascending, no duplicates).
type DashboardStat struct {
	UserID    int    `json:"-"`
	Topic     string `json:"topic"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
	Solved    []int  `json:"solved"`
}

// TopicStats is a DashboardStat keyed by topic slug in list responses
type TopicStats struct {
	Attempted int   `json:"attempted"`
	Correct   int   `json:"correct"`
	Solved    []int `json:"solved"`
}

// ProgressSummary is derived from a TopicGroup and its optional stat
type ProgressSummary struct {
	Attempted               int     `json:"attempted"`
	Correct                 int     `json:"correct"`
	Accuracy                float64 `json:"accuracy"`
	FirstUnsolvedQuestionID *int    `json:"firstUnsolvedQuestionId,omitempty"`
}

// ChartPoint is a single slice of the per-topic chart
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TopicProgress is the dashboard view of one topic group
type TopicProgress struct {
	Slug           string       `json:"slug"`
	Name           string       `json:"name"`
	TotalQuestions int          `json:"totalQuestions"`
	SolvedCount    int          `json:"solvedCount"`
	Chart          []ChartPoint `json:"chart"`
	ProgressSummary
}

// AnswerSubmission represents a single answer submitted during practice
//
// Either SelectedIndex with QuestionID (server-side grading) or Topic with IsCorrect must be set.
type AnswerSubmission struct {
	Topic         string `json:"topic"`
	QuestionID    int    `json:"questionId"`
	IsCorrect     *bool  `json:"isCorrect,omitempty"`
	SelectedIndex *int   `json:"selectedIndex,omitempty"`
}

// ResetRequest represents a request to reset dashboard counters
type ResetRequest struct {
	Topic string `json:"topic"`
}

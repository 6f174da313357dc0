package models

// FeedbackRequest represents a request for AI feedback on an answer
type FeedbackRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Assumption    string `json:"assumption"`
}

// FeedbackResponse holds generated feedback text
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

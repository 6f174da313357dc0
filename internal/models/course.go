package models

// Course represents a course grouping several topics
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

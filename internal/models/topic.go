package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Topic is the authoritative topic entity created by an admin.
//
// Slug is derived from Name once at creation time and never recomputed.
type Topic struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	CourseID int    `json:"courseId"`
}

// CreateTopicRequest represents a request to create a topic
type CreateTopicRequest struct {
	Name     string `json:"name"`
	CourseID int    `json:"courseId"`
}

// TopicRef is a topic as it appears on a question.
//
// A bare string (display name or slug) decodes into Name only.
// A structured reference carries ID, Name and Slug.
type TopicRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// IsStructured reports whether the reference points to a Topic entity
func (r TopicRef) IsStructured() bool {
	return r.ID > 0 || r.Slug != ""
}

// topicRefObject accepts both "id" and the legacy "_id" key.
type topicRefObject struct {
	ID       int    `json:"id"`
	LegacyID int    `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
}

// UnmarshalJSON accepts either a JSON string or an object {id|_id, name, slug}
func (r *TopicRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = TopicRef{}
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("invalid topic string: %w", err)
		}
		*r = TopicRef{Name: name}
		return nil
	}

	var obj topicRefObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid topic reference: %w", err)
	}
	id := obj.ID
	if id == 0 {
		id = obj.LegacyID
	}
	*r = TopicRef{ID: id, Name: obj.Name, Slug: obj.Slug}
	return nil
}

package journal

import (
	"time"

	"github.com/google/uuid"
)

// CommonTags are the suggested tags shown in the editor
var CommonTags = []string{
	"gratitude", "work", "family", "health", "goals", "reflection",
	"anxiety", "happiness", "stress", "growth", "relationships", "self-care",
}

// Entry represents a journal entry
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEntryRequest is the request body for creating an entry
type CreateEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdateEntryRequest is the request body for a partial update.
// nil fields остаются без изменений.
type UpdateEntryRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Mood    *string   `json:"mood,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// EntriesResponse is the response for listing entries
type EntriesResponse struct {
	Entries []Entry `json:"entries"`
}

// TagsResponse is the response for tag suggestions
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

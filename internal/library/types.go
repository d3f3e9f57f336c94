package library

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status is a book's read state as stored by the API.
type Status string

const (
	StatusRead   Status = "read"
	StatusUnread Status = "unread"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusRead || s == StatusUnread
}

// Toggled returns the opposite read state.
func (s Status) Toggled() Status {
	if s == StatusRead {
		return StatusUnread
	}
	return StatusRead
}

// Book mirrors a book document as returned by the library API. The id and
// creation time are server-assigned and immutable.
type Book struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (b Book) ParsedCreatedAt() time.Time {
	if b.CreatedAt == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, b.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Draft is the payload for creating a book. The server assigns id and
// createdAt; a blank status is sent as unread.
type Draft struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      Status `json:"status" validate:"omitempty,oneof=read unread"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the draft's required fields and status value, returning a
// message suitable for inline display in a form.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	first := errs[0]
	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fieldLabel(first.Field()))
	case "oneof":
		return fmt.Errorf("status must be read or unread")
	}
	return fmt.Errorf("%s is invalid", fieldLabel(first.Field()))
}

func fieldLabel(field string) string {
	switch field {
	case "Title":
		return "title"
	case "Author":
		return "author"
	case "Description":
		return "description"
	case "Status":
		return "status"
	}
	return field
}

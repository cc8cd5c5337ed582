package notes

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrFieldsRequired is returned when a title or content is blank after trimming.
	ErrFieldsRequired = errors.New("both fields required")
	// ErrNoteNotFound is returned when an id names no note on the board.
	ErrNoteNotFound = errors.New("note not found")
)

// Note is a single persisted title/content record.
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft is the uncommitted copy of a note's editable fields while it is being edited.
type Draft struct {
	ID      string
	Title   string
	Content string
}

func validate(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", ErrFieldsRequired
	}
	return title, content, nil
}

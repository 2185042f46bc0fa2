package book

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrMissingName is returned when the input has no name.
	ErrMissingName = errors.New("book name is required")
	// ErrReadPageExceedsPageCount is returned when readPage > pageCount.
	ErrReadPageExceedsPageCount = errors.New("readPage must not exceed pageCount")
	// ErrMissingRequiredFields is returned when author, summary or publisher is empty.
	ErrMissingRequiredFields = errors.New("author, summary and publisher are required")
	// ErrDuplicateID is returned by a repository asked to store an id it already holds.
	ErrDuplicateID = errors.New("book id already exists")
)

// Book represents a book entity.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input carries the editable fields of a book as submitted by a client.
type Input struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author" validate:"required"`
	Summary   string `json:"summary" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// Summary is the list projection of a book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// NewBook builds a fresh record stamped with now for both timestamps.
func NewBook(id string, in Input, now time.Time) Book {
	b := Book{ID: id, InsertedAt: now}
	return b.WithUpdatedFields(in, now)
}

// WithUpdatedFields returns a copy of b with every editable field replaced by in.
// ID and InsertedAt are kept, Finished is recomputed and UpdatedAt never moves backwards.
func (b Book) WithUpdatedFields(in Input, now time.Time) Book {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.PageCount == in.ReadPage
	if now.After(b.UpdatedAt) {
		b.UpdatedAt = now
	}
	return b
}

// Summarize projects b down to its list view.
func (b Book) Summarize() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Filter defines the optional, conjunctive filters for listing books.
// A nil flag means the filter is not applied.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

// Match reports whether b satisfies every filter that is set.
func (f Filter) Match(b Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

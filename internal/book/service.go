package book

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// validation steps run in order and the first failing one wins.
type validationStep struct {
	fields []string
	err    error
}

var (
	nameStep     = validationStep{fields: []string{"Name"}, err: ErrMissingName}
	readPageStep = validationStep{fields: []string{"ReadPage"}, err: ErrReadPageExceedsPageCount}
	requiredStep = validationStep{fields: []string{"Author", "Summary", "Publisher"}, err: ErrMissingRequiredFields}

	addSteps = []validationStep{nameStep, readPageStep, requiredStep}
	// Update does not re-check author, summary and publisher.
	updateSteps = []validationStep{nameStep, readPageStep}
)

func validateInput(in Input, steps []validationStep) error {
	for _, step := range steps {
		if err := validate.StructPartial(in, step.fields...); err != nil {
			return step.err
		}
	}
	return nil
}

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how new book ids are produced.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates in, stores a new book and returns its id.
func (s *Service) Add(ctx context.Context, in Input) (string, error) {
	if err := validateInput(in, addSteps); err != nil {
		return "", err
	}

	b := NewBook(s.newID(), in, s.now())
	if err := s.repo.Insert(ctx, b); err != nil {
		return "", fmt.Errorf("insert book: %w", err)
	}
	log.Printf("book added id=%s", b.ID)
	return b.ID, nil
}

// List returns the projections of all books matching f, in storage order.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.Summarize())
	}
	return out, nil
}

// GetByID returns a book by its id.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateByID replaces every editable field of the book with the given id.
// Input is validated before the lookup.
func (s *Service) UpdateByID(ctx context.Context, id string, in Input) error {
	if err := validateInput(in, updateSteps); err != nil {
		return err
	}

	now := s.now()
	if _, err := s.repo.Update(ctx, id, func(old Book) Book {
		return old.WithUpdatedFields(in, now)
	}); err != nil {
		return err
	}
	log.Printf("book updated id=%s", id)
	return nil
}

// DeleteByID removes the book with the given id.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("book deleted id=%s", id)
	return nil
}

package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
// Implementations keep books in insertion order.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context, f Filter) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	// Update applies fn to the stored book and saves the result as one step.
	Update(ctx context.Context, id string, fn func(Book) Book) (Book, error)
	Delete(ctx context.Context, id string) error
}

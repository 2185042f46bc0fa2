package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps books in a process-local slice in insertion order.
// Nothing survives a restart.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) indexOf(id string) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}

func (r *MemoryRepo) Insert(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(b.ID) >= 0 {
		return ErrDuplicateID
	}
	r.books = append(r.books, b)
	return nil
}

func (r *MemoryRepo) List(_ context.Context, f Filter) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

func (r *MemoryRepo) Update(_ context.Context, id string, fn func(Book) Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	updated := fn(r.books[i])
	updated.ID = id
	r.books[i] = updated
	return updated, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.books = slices.Delete(r.books, i, i+1)
	return nil
}

// Len returns the number of stored books.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

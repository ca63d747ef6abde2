package server

import (
	"context"
	"errors"
	"slices"
	"sync"

	"fooddash/internal/food"
)

// ErrFoodNotFound is returned when no food has the requested id.
var ErrFoodNotFound = errors.New("food not found")

// Repository stores foods for the dev server. Foods are listed in id order,
// which is creation order because ids only grow.
type Repository interface {
	List(ctx context.Context) ([]food.Food, error)
	Get(ctx context.Context, id int) (food.Food, error)
	Create(ctx context.Context, draft food.Draft) (food.Food, error)
	Update(ctx context.Context, f food.Food) (food.Food, error)
	Delete(ctx context.Context, id int) error
	// Seed inserts foods with their own ids when the repository is empty.
	// It reports whether anything was written.
	Seed(ctx context.Context, foods []food.Food) (bool, error)
	Close() error
}

// InMemoryRepository keeps foods in a slice guarded by a RWMutex.
type InMemoryRepository struct {
	mu     sync.RWMutex
	foods  []food.Food
	lastID int
}

// NewInMemoryRepository creates an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]food.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.foods)
	if out == nil {
		out = []food.Food{}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int) (food.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i >= 0 {
		return r.foods[i], nil
	}
	return food.Food{}, ErrFoodNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, draft food.Draft) (food.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	f := draft.WithID(r.lastID)
	r.foods = append(r.foods, f)
	return f, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, f food.Food) (food.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(f.ID)
	if i < 0 {
		return food.Food{}, ErrFoodNotFound
	}
	r.foods[i] = f
	return f, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return ErrFoodNotFound
	}
	r.foods = slices.Delete(r.foods, i, i+1)
	return nil
}

func (r *InMemoryRepository) Seed(ctx context.Context, foods []food.Food) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.foods) > 0 || len(foods) == 0 {
		return false, nil
	}
	sorted := slices.Clone(foods)
	slices.SortStableFunc(sorted, func(a, b food.Food) int { return a.ID - b.ID })
	for _, f := range sorted {
		if f.ID <= r.lastID {
			r.lastID++
			f.ID = r.lastID
		} else {
			r.lastID = f.ID
		}
		r.foods = append(r.foods, f)
	}
	return true, nil
}

func (r *InMemoryRepository) Close() error { return nil }

func (r *InMemoryRepository) index(id int) int {
	return slices.IndexFunc(r.foods, func(f food.Food) bool { return f.ID == id })
}

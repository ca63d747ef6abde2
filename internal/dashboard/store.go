// Package dashboard holds the food dashboard state and the operations that keep
// it in sync with the remote collection.
//
// The Store is a session cache: the remote API is the source of truth. Every
// successful mutation replaces the food slice wholesale; the previous slice is
// never modified, so snapshots handed out earlier stay valid.
package dashboard

import (
	"slices"

	"fooddash/internal/food"
)

// Store holds the foods plus the transient modal state.
// It is not safe for concurrent use; Controller serializes access.
type Store struct {
	foods    []food.Food
	addOpen  bool
	editOpen bool
	editing  *food.Food
	loading  bool // initial load started
}

// NewStore returns an empty store: no foods, all modals closed, nothing targeted.
func NewStore() *Store {
	return &Store{foods: []food.Food{}}
}

// Foods returns the current collection. The returned slice must not be modified.
func (s *Store) Foods() []food.Food {
	return s.foods
}

// Len returns the number of foods.
func (s *Store) Len() int {
	return len(s.foods)
}

// Find returns the food with id.
func (s *Store) Find(id int) (food.Food, bool) {
	for _, f := range s.foods {
		if f.ID == id {
			return f, true
		}
	}
	return food.Food{}, false
}

func (s *Store) AddModalOpen() bool  { return s.addOpen }
func (s *Store) EditModalOpen() bool { return s.editOpen }

// Editing returns the food targeted for editing, if any.
func (s *Store) Editing() (food.Food, bool) {
	if s.editing == nil {
		return food.Food{}, false
	}
	return *s.editing, true
}

// ToggleAddModal flips the add-modal flag and nothing else.
func (s *Store) ToggleAddModal() {
	s.addOpen = !s.addOpen
}

// ToggleEditModal flips the edit-modal flag and nothing else.
// The editing target is kept, so reopening shows the previous target.
func (s *Store) ToggleEditModal() {
	s.editOpen = !s.editOpen
}

// EditFood targets f for editing and flips the edit-modal flag in one step.
func (s *Store) EditFood(f food.Food) {
	s.editing = &f
	s.editOpen = !s.editOpen
}

// replaceAll installs the loaded collection.
func (s *Store) replaceAll(foods []food.Food) {
	s.foods = slices.Clone(foods)
	if s.foods == nil {
		s.foods = []food.Food{}
	}
}

// appendFood adds a created food at the end.
func (s *Store) appendFood(f food.Food) {
	next := make([]food.Food, 0, len(s.foods)+1)
	next = append(next, s.foods...)
	s.foods = append(next, f)
}

// replaceByID swaps every entry whose ID matches f.ID for f.
func (s *Store) replaceByID(f food.Food) {
	next := make([]food.Food, len(s.foods))
	for i, cur := range s.foods {
		if cur.ID == f.ID {
			next[i] = f
		} else {
			next[i] = cur
		}
	}
	s.foods = next
}

// removeByID drops entries whose ID equals id. Unknown ids leave the collection as is.
func (s *Store) removeByID(id int) {
	next := make([]food.Food, 0, len(s.foods))
	for _, f := range s.foods {
		if f.ID != id {
			next = append(next, f)
		}
	}
	s.foods = next
}

// Apply reconciles the collection with a finished remote call.
// Failed results leave the collection untouched.
func (s *Store) Apply(r Result) {
	if r.Err != nil {
		return
	}
	switch r.Op {
	case OpLoad:
		s.replaceAll(r.Foods)
	case OpCreate:
		s.appendFood(r.Food)
	case OpUpdate, OpSetAvailable:
		s.replaceByID(r.Food)
	case OpDelete:
		s.removeByID(r.ID)
	}
}

// PrepareUpdate merges patch onto the editing target and returns the full
// replacement to send. It fails with ErrNoTarget when nothing is targeted.
func (s *Store) PrepareUpdate(patch food.Patch) (food.Food, error) {
	if s.editing == nil {
		return food.Food{}, ErrNoTarget
	}
	return patch.Apply(*s.editing), nil
}

// BeginLoad marks the initial load as started. It returns ErrAlreadyLoaded on
// every call after the first.
func (s *Store) BeginLoad() error {
	if s.loading {
		return ErrAlreadyLoaded
	}
	s.loading = true
	return nil
}

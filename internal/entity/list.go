package entity

import "errors"

// MaxEntities is the capacity of every entity list in a region.
const MaxEntities = 64

// ErrCapacityExceeded is returned by List.Add when the list is full.
var ErrCapacityExceeded = errors.New("entity capacity exceeded")

// List is an ordered collection with a fixed maximum size.
// Items are addressed by insertion index, which links keys and switches to doors.
type List[T any] struct {
	items []T
	limit int
}

// NewList creates an empty list that holds at most limit items.
func NewList[T any](limit int) List[T] {
	return List[T]{limit: limit}
}

// Add appends item, or returns ErrCapacityExceeded and leaves the list unchanged.
func (l *List[T]) Add(item T) (int, error) {
	if len(l.items) >= l.Cap() {
		return -1, ErrCapacityExceeded
	}
	l.items = append(l.items, item)
	return len(l.items) - 1, nil
}

// At returns a pointer to the item at index i so callers can mutate it in place.
func (l *List[T]) At(i int) *T {
	return &l.items[i]
}

// Valid reports whether i addresses an item in the list.
func (l *List[T]) Valid(i int) bool {
	return i >= 0 && i < len(l.items)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the maximum number of items. A zero-value list uses MaxEntities.
func (l *List[T]) Cap() int {
	if l.limit <= 0 {
		return MaxEntities
	}
	return l.limit
}

// Items returns the backing slice. Mutating elements mutates the list.
func (l *List[T]) Items() []T {
	return l.items
}


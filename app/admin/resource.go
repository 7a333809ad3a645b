package admin

import (
	"context"
	"sync"

	"github.com/shashiranjanraj/fooddash/pkg/collection"
)

// State is the lifecycle of a Resource's last fetch.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// Resource is the local copy of one server-side list. The state only moves
// through Begin, Succeed and Fail; the mutation helpers patch the cached
// items after a successful write without a re-fetch.
type Resource[T any] struct {
	mu    sync.RWMutex
	state State
	items []T
	err   error
	idOf  func(T) string
}

func NewResource[T any](idOf func(T) string) *Resource[T] {
	return &Resource[T]{items: []T{}, idOf: idOf}
}

// Begin marks a fetch in flight. Items from the previous fetch stay
// visible until Succeed replaces them.
func (r *Resource[T]) Begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Loading
	r.err = nil
}

func (r *Resource[T]) Succeed(items []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Ready
	r.err = nil
	r.items = append(make([]T, 0, len(items)), items...)
}

func (r *Resource[T]) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Failed
	r.err = err
}

// Load runs fetch between Begin and Succeed or Fail.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	r.Begin()
	items, err := fetch(ctx)
	if err != nil {
		r.Fail(err)
		return err
	}
	r.Succeed(items)
	return nil
}

func (r *Resource[T]) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Err is the error of the last failed fetch.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Items returns a copy of the cached list.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]T{}, r.items...)
}

func (r *Resource[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *Resource[T]) Find(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collection.First(r.items, func(item T) bool { return r.idOf(item) == id })
}

// Prepend puts a newly created item first, where a list sorted newest
// first would show it.
func (r *Resource[T]) Prepend(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]T{item}, r.items...)
}

// Replace swaps the cached item with the same id; it reports false when
// the item is not cached.
func (r *Resource[T]) Replace(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.idOf(item)
	idx := collection.IndexOf(r.items, func(existing T) bool { return r.idOf(existing) == id })
	if idx < 0 {
		return false
	}
	r.items[idx] = item
	return true
}

func (r *Resource[T]) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.items)
	r.items = collection.Reject(r.items, func(item T) bool { return r.idOf(item) == id })
	return len(r.items) != before
}

// Page returns one 1-based page of the cached items.
func (r *Resource[T]) Page(page, size int) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]T{}, collection.Paginate(r.items, page, size)...)
}

func (r *Resource[T]) PageCount(size int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collection.PageCount(len(r.items), size)
}

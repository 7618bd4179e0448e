// Package views turns cached collections into what the back office displays:
// filterable lists with a load state, and read-only detail projections.
package views

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// State is the load state of a list view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ErrDiscarded is returned by Load when its result arrived after a newer load
// started or the view was closed. The result is not applied.
var ErrDiscarded = errors.New("view: stale load result discarded")

// Loader fetches the full collection a view displays.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Matcher reports whether item matches text. text is already lower-cased and non-empty.
type Matcher[T any] func(item T, text string) bool

// ListView holds the last loaded collection and a text filter over it.
// It is safe for concurrent use.
type ListView[T any] struct {
	load  Loader[T]
	match Matcher[T]

	mu         sync.Mutex
	state      State
	items      []T
	filter     string
	err        error
	generation uint64
	closed     bool
}

// NewListView creates an idle view.
func NewListView[T any](load Loader[T], match Matcher[T]) *ListView[T] {
	return &ListView[T]{load: load, match: match}
}

// Load fetches the collection and moves the view to Loaded or Error. It is also
// how a loaded view is refreshed and a failed one retried. On failure the
// previously loaded items stay in place.
func (v *ListView[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrDiscarded
	}
	v.generation++
	generation := v.generation
	v.state = StateLoading
	v.mu.Unlock()

	items, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || generation != v.generation {
		return ErrDiscarded
	}
	if err != nil {
		v.state = StateError
		v.err = err
		return err
	}
	v.state = StateLoaded
	v.err = nil
	v.items = items
	return nil
}

// Close detaches the view. Loads still in flight are discarded when they finish.
func (v *ListView[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.generation++
}

// State returns the current load state.
func (v *ListView[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Err returns the error of the last load, if it failed.
func (v *ListView[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetFilter changes the filter text.
func (v *ListView[T]) SetFilter(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = text
}

// Filter returns the current filter text.
func (v *ListView[T]) Filter() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// All returns the full loaded collection.
func (v *ListView[T]) All() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]T(nil), v.items...)
}

// Items returns the loaded items matching the current filter.
func (v *ListView[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return FilterItems(v.items, v.filter, v.match)
}

// Find returns the first loaded item satisfying pred, ignoring the filter.
func (v *ListView[T]) Find(pred func(T) bool) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, item := range v.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FilterItems returns a new slice with the items matching text case-insensitively.
// An empty text matches everything. items is never modified.
func FilterItems[T any](items []T, text string, match Matcher[T]) []T {
	out := make([]T, 0, len(items))
	if text == "" || match == nil {
		return append(out, items...)
	}
	text = strings.ToLower(text)
	for _, item := range items {
		if match(item, text) {
			out = append(out, item)
		}
	}
	return out
}

func containsFold(s, lowerText string) bool {
	return strings.Contains(strings.ToLower(s), lowerText)
}

package client

import (
	"context"
	"log/slog"
	"sync"
)

// LoaderState is the infinite-scroll state machine.
type LoaderState int

const (
	// StateIdle: ready, a visibility trigger will fetch the next page.
	StateIdle LoaderState = iota
	// StateLoading: a page fetch is in flight; further triggers are refused.
	StateLoading
	// StateExhausted: the last page has been appended; triggers are refused.
	StateExhausted
	// StateErrored: the last fetch failed; state is otherwise unchanged and a
	// new trigger retries the same page.
	StateErrored
)

func (s LoaderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateExhausted:
		return "exhausted"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// FetchPageFunc loads one page of results.
type FetchPageFunc[T any] func(ctx context.Context, page, limit int) (*PaginatedResponse[T], error)

// Loader drives incremental loading for a list view. It is seeded with the
// server-rendered first page and appends one page per visibility trigger.
// The one invariant: never issue a new page fetch while one is in flight.
type Loader[T any] struct {
	mu    sync.Mutex
	fetch FetchPageFunc[T]

	items      []T
	page       int
	limit      int
	totalPages int
	state      LoaderState

	logger *slog.Logger
}

// NewLoader seeds a loader from the initial page envelope.
func NewLoader[T any](initial *PaginatedResponse[T], fetch FetchPageFunc[T]) *Loader[T] {
	l := &Loader[T]{
		fetch:      fetch,
		items:      append([]T(nil), initial.Data...),
		page:       initial.Page,
		limit:      initial.Limit,
		totalPages: initial.TotalPages,
		state:      StateIdle,
		logger:     slog.Default().With("component", "scroll_loader"),
	}
	if initial.Page >= initial.TotalPages {
		l.state = StateExhausted
	}
	return l
}

// TriggerVisible is the visibility callback: the sentinel element entered the
// viewport. It fetches the next page unless a fetch is already in flight or
// the list is exhausted. Returns true when a page was appended.
func (l *Loader[T]) TriggerVisible(ctx context.Context) bool {
	l.mu.Lock()
	if l.state == StateLoading || l.state == StateExhausted {
		l.mu.Unlock()
		return false
	}
	l.state = StateLoading
	nextPage := l.page + 1
	limit := l.limit
	l.mu.Unlock()

	result, err := l.fetch(ctx, nextPage, limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		// No retry, no backoff: log, keep page/items/totalPages untouched and
		// stay triggerable.
		l.logger.WarnContext(ctx, "Page fetch failed", "page", nextPage, "error", err)
		l.state = StateErrored
		return false
	}

	l.items = append(l.items, result.Data...)
	l.page = nextPage
	l.totalPages = result.TotalPages
	if nextPage >= result.TotalPages {
		l.state = StateExhausted
	} else {
		l.state = StateIdle
	}
	return true
}

// Items returns a snapshot of everything loaded so far.
func (l *Loader[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

func (l *Loader[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

func (l *Loader[T]) State() LoaderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// HasMore reports whether more pages remain.
func (l *Loader[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state != StateExhausted
}

func (l *Loader[T]) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == StateLoading
}

package portfolio

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"sync"

	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
)

// listEnvelope mirrors the admin list response shape.
type listEnvelope[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// ListController drives one paginated admin table. It owns the page index,
// page size and filter set and exposes the last successfully fetched page.
//
// Fetches are sequence-tagged: each Fetch takes the next sequence number and
// only the response matching the latest issued number may update the state,
// so a slow earlier response can never overwrite a newer page.
type ListController[T any] struct {
	client   *Client
	resource string
	notifier *Notifier

	mu      sync.Mutex
	page    int
	limit   int
	filters map[string]string
	seq     uint64

	items   []T
	total   int64
	loading bool
	fetched bool
}

// NewListController creates a controller for the collection mounted at
// resource, e.g. "/publications".
func NewListController[T any](client *Client, resource string, notifier *Notifier) *ListController[T] {
	return &ListController[T]{
		client:   client,
		resource: resource,
		notifier: notifier,
		limit:    helpers.DefaultLimit,
		filters:  map[string]string{},
	}
}

// SetLimit changes the page size and resets to the first page.
func (l *ListController[T]) SetLimit(limit int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limit = helpers.ClampLimit(limit)
	l.page = 0
}

// SetPage moves to a 0-based page index. Filters are untouched.
func (l *ListController[T]) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if page < 0 {
		page = 0
	}
	l.page = page
}

// SetFilter sets one filter value and resets to the first page. An empty
// value removes the filter.
func (l *ListController[T]) SetFilter(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if value == "" {
		delete(l.filters, key)
	} else {
		l.filters[key] = value
	}
	l.page = 0
}

// Page returns the current 0-based page index.
func (l *ListController[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// Items returns the last successfully fetched page.
func (l *ListController[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

// Total returns the row count for the active filters.
func (l *ListController[T]) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// TotalPages returns the page count for the active filters and page size.
func (l *ListController[T]) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return helpers.TotalPages(l.total, l.limit)
}

// Loading reports whether a fetch is in flight.
func (l *ListController[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Empty reports whether the last completed fetch returned no rows. A page
// past the end counts as empty even when the collection total is non-zero.
func (l *ListController[T]) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetched && len(l.items) == 0
}

// Fetch loads the current page. A failed fetch keeps the previous page data;
// the first fetch's failure is additionally reported through the notifier
// since there is nothing on screen yet.
func (l *ListController[T]) Fetch(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.loading = true
	query := url.Values{}
	query.Set("skip", strconv.Itoa(l.page*l.limit))
	query.Set("limit", strconv.Itoa(l.limit))
	for k, v := range l.filters {
		query.Set(k, v)
	}
	l.mu.Unlock()

	var raw json.RawMessage
	err := l.client.Get(ctx, l.resource+"/", query, &raw)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		// A newer fetch was issued while this one was in flight.
		return nil
	}
	l.loading = false

	if err != nil {
		if !l.fetched && l.notifier != nil {
			l.notifier.Publish(Notification{Severity: SeverityRead, Message: err.Error()})
		}
		return err
	}

	var envelope listEnvelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	l.items = envelope.Data
	l.total = envelope.Total
	l.fetched = true
	return nil
}

// Package vendors implements the vendor directory search: category
// filtering plus a debounced free-text query with stale-response
// protection.
package vendors

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vowsync/vowsync/internal/models"
)

// DefaultDebounce is the quiet period after the last keystroke before a
// query is issued.
const DefaultDebounce = 300 * time.Millisecond

// categoryQueries maps directory categories to the search phrase sent to
// the vendor proxy.
var categoryQueries = map[string]string{
	"Venues":        "wedding venues",
	"Photographers": "wedding photographer",
	"Videographer":  "wedding videographer",
	"Caterers":      "wedding caterers",
	"Florists":      "florist",
	"Music":         "wedding music",
	"Decor":         "wedding decor",
	"Cake":          "wedding cake",
	"Rings":         "wedding rings",
	"Dress":         "wedding dress, wedding atelier",
	"Makeup":        "wedding makeup artist",
}

// Categories returns the directory categories in display order.
func Categories() []string {
	return []string{
		"Venues", "Photographers", "Videographer", "Caterers", "Florists",
		"Music", "Decor", "Cake", "Rings", "Dress", "Makeup",
	}
}

// CategoryQuery resolves a category to its search phrase, empty for
// unknown categories.
func CategoryQuery(category string) string {
	return categoryQueries[category]
}

// SearchFunc performs the actual proxy call. It is normally
// (*api.Client).SearchVendors.
type SearchFunc func(ctx context.Context, query, location string) ([]models.Vendor, error)

// Searcher debounces keystrokes and tags every issued request with a
// generation number. Only the response matching the latest issued
// generation is delivered, so a slow response for "A" can never overwrite
// the results of a later "AB" query. Superseded in-flight requests are
// additionally cancelled through their context.
type Searcher struct {
	search    SearchFunc
	debounce  time.Duration
	onResults func([]models.Vendor)
	onError   func(error)

	mu       sync.Mutex
	gen      uint64
	category string
	query    string
	location string
	timer    *time.Timer
	cancel   context.CancelFunc
	closed   bool
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDebounce overrides the quiet period, mainly for tests.
func WithDebounce(d time.Duration) Option {
	return func(s *Searcher) { s.debounce = d }
}

// WithErrorHandler registers a callback for failed queries. Errors from
// superseded requests are dropped, not reported.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Searcher) { s.onError = fn }
}

// NewSearcher builds a searcher delivering result sets to onResults.
func NewSearcher(search SearchFunc, onResults func([]models.Vendor), opts ...Option) *Searcher {
	s := &Searcher{
		search:    search,
		debounce:  DefaultDebounce,
		onResults: onResults,
		category:  "Venues",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLocation sets the location filter used by subsequent queries.
func (s *Searcher) SetLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = location
}

// SetCategory switches the directory category and issues a query
// immediately; category taps are deliberate, so they skip the debounce.
func (s *Searcher) SetCategory(category string) {
	s.mu.Lock()
	s.category = category
	s.supersedeLocked()
	s.mu.Unlock()
	s.fire()
}

// SetQuery records a keystroke. The query is issued once the input has been
// quiet for the debounce period; every keystroke invalidates whatever was
// pending or in flight before it.
func (s *Searcher) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.query = query
	s.supersedeLocked()
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

// Refresh re-issues the current query immediately, e.g. for a retry button.
func (s *Searcher) Refresh() {
	s.mu.Lock()
	s.supersedeLocked()
	s.mu.Unlock()
	s.fire()
}

// Close stops the pending timer and cancels any in-flight request. The
// searcher delivers nothing after Close returns.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.supersedeLocked()
}

// supersedeLocked invalidates the current generation, stops the pending
// debounce timer, and cancels the in-flight request, if any. Callers
// hold s.mu.
func (s *Searcher) supersedeLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// fire issues the query for the current input state.
func (s *Searcher) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	query := CategoryQuery(s.category)
	if s.query != "" {
		query += " " + s.query
	}
	location := s.location
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		results, err := s.search(ctx, query, location)

		s.mu.Lock()
		stale := s.closed || gen != s.gen
		s.mu.Unlock()
		if stale {
			slog.Debug("dropping superseded vendor search", "query", query)
			return
		}

		if err != nil {
			if s.onError != nil {
				s.onError(err)
			}
			return
		}
		s.onResults(results)
	}()
}

package services

import (
	"context"
	"sync"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
)

// PageFetcher loads one page of entries for the pager's current filters.
// Implementations typically close over a CatalogClient call.
type PageFetcher func(ctx context.Context, page int) ([]dto.WebsiteItem, *dto.PaginationInfo, error)

// PagerState is the pager's observable lifecycle state.
type PagerState int

const (
	PagerIdle PagerState = iota
	PagerLoading
)

// InfinitePager drives infinite-scroll consumption of the catalog API.
//
// It is an explicit state machine: ScrolledIntoView moves Idle to Loading
// and back, FilterChanged restarts from page 1. At most one fetch is in
// flight at a time; a scroll trigger arriving while Loading is a no-op.
// Every fetch is tagged with the generation current at its start, and a
// response whose generation no longer matches is dropped, so a filter
// change can never have a stale page appended after its reset.
type InfinitePager struct {
	mu sync.Mutex

	fetch PageFetcher

	state       PagerState
	generation  uint64
	currentPage int
	hasMore     bool
	entries     []dto.WebsiteItem
	lastErr     error
}

// NewInfinitePager creates a pager over the given fetcher, positioned
// before the first page.
func NewInfinitePager(fetch PageFetcher) *InfinitePager {
	return &InfinitePager{
		fetch:       fetch,
		state:       PagerIdle,
		currentPage: 0,
		hasMore:     true,
	}
}

// FilterChanged resets the pager for a new filter combination: accumulated
// entries are discarded, the page counter restarts, and the generation is
// bumped so any in-flight fetch for the old filters is dropped on arrival.
// The new fetcher captures the new filter values.
func (p *InfinitePager) FilterChanged(fetch PageFetcher) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fetch = fetch
	p.generation++
	p.currentPage = 0
	p.hasMore = true
	p.entries = nil
	p.lastErr = nil
	p.state = PagerIdle
}

// ScrolledIntoView is the viewport-intersection trigger. It fetches the next
// page unless a fetch is already in flight or the terminal page has been
// reached; both cases are silent no-ops. On failure the pager returns to
// Idle with hasMore unchanged, so the same page can be retried by the next
// trigger.
func (p *InfinitePager) ScrolledIntoView(ctx context.Context) {
	p.mu.Lock()
	if p.state == PagerLoading || !p.hasMore {
		p.mu.Unlock()
		return
	}
	p.state = PagerLoading
	gen := p.generation
	page := p.currentPage + 1
	fetch := p.fetch
	p.mu.Unlock()

	entries, pagination, err := fetch(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		// A filter change superseded this fetch while it was in flight.
		return
	}

	p.state = PagerIdle
	if err != nil {
		p.lastErr = err
		return
	}

	p.lastErr = nil
	p.entries = append(p.entries, entries...)
	p.currentPage = page
	if pagination != nil {
		p.hasMore = pagination.HasNextPage
	} else {
		p.hasMore = false
	}
}

// State returns the current lifecycle state.
func (p *InfinitePager) State() PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Entries returns a copy of the accumulated entries in fetch order.
func (p *InfinitePager) Entries() []dto.WebsiteItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]dto.WebsiteItem, len(p.entries))
	copy(out, p.entries)
	return out
}

// CurrentPage returns the last successfully applied page, 0 before any.
func (p *InfinitePager) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

// HasMore reports whether another page is expected.
func (p *InfinitePager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Err returns the error from the most recent fetch, nil after a success
// or a reset.
func (p *InfinitePager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

package pagination

import (
	"sync"
	"time"
)

// Pager windows an in-memory slice with infinite-scroll semantics: the
// displayed window always covers pages 1..n cumulatively and grows one page
// per LoadMore. The configurable delay reproduces the deliberate
// perceived-latency pause before new items appear; it is a UX affordance on
// a plain timer, not a network wait.
type Pager[T any] struct {
	mu       sync.Mutex
	items    []T
	pageSize int
	page     int
	gen      int
	loading  bool
	delay    time.Duration
}

// NewPager creates a pager. pageSize below 1 is coerced to 1.
func NewPager[T any](pageSize int, delay time.Duration) *Pager[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager[T]{pageSize: pageSize, delay: delay, page: 1}
}

// Reset replaces the source items and rewinds to page 1. Callers invoke it
// whenever the source collection changes.
func (p *Pager[T]) Reset(items []T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
	p.page = 1
	p.gen++
}

// Displayed returns a copy of the current cumulative window.
func (p *Pager[T]) Displayed() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.windowLocked()
}

func (p *Pager[T]) windowLocked() []T {
	end := p.page * p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	out := make([]T, end)
	copy(out, p.items[:end])
	return out
}

// HasMore reports whether any items remain beyond the current window.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page*p.pageSize < len(p.items)
}

// IsLoading reports whether a LoadMore is in flight.
func (p *Pager[T]) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// CurrentPage returns the highest loaded page number.
func (p *Pager[T]) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// LoadMore grows the window by one page after the configured delay and
// reports whether it did anything. Calls made while a load is in flight or
// once the list is exhausted are rejected, not queued; the scroll trigger
// relies on this to de-duplicate near-bottom events. A Reset that lands
// during the delay wins: the pending advance is discarded so the fresh list
// starts on page one.
func (p *Pager[T]) LoadMore() bool {
	p.mu.Lock()
	if p.loading || p.page*p.pageSize >= len(p.items) {
		p.mu.Unlock()
		return false
	}
	p.loading = true
	gen := p.gen
	p.mu.Unlock()

	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if p.gen != gen {
		return false
	}
	p.page++
	return true
}

// GoToPage jumps straight to a cumulative window covering pages 1..n,
// clamping n to the valid range.
func (p *Pager[T]) GoToPage(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := p.totalPagesLocked()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	p.page = n
}

// TotalPages returns the page count for the current source (minimum 1).
func (p *Pager[T]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPagesLocked()
}

func (p *Pager[T]) totalPagesLocked() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// Window is the traditional pager variant used by table views: it exposes a
// single non-cumulative page at a time.
type Window[T any] struct {
	items    []T
	pageSize int
	page     int
}

// NewWindow creates a windowed pager. pageSize below 1 is coerced to 1.
func NewWindow[T any](pageSize int) *Window[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Window[T]{pageSize: pageSize, page: 1}
}

// SetItems replaces the source. A change in source length rewinds to page 1;
// an equal-length replacement (an in-place edit) keeps the current page.
func (w *Window[T]) SetItems(items []T) {
	if len(items) != len(w.items) {
		w.page = 1
	}
	w.items = items
	if w.page > w.TotalPages() {
		w.page = w.TotalPages()
	}
}

// Page returns a copy of the current page's items.
func (w *Window[T]) Page() []T {
	start := (w.page - 1) * w.pageSize
	if start >= len(w.items) {
		return []T{}
	}
	end := start + w.pageSize
	if end > len(w.items) {
		end = len(w.items)
	}
	out := make([]T, end-start)
	copy(out, w.items[start:end])
	return out
}

// CurrentPage returns the 1-based current page.
func (w *Window[T]) CurrentPage() int { return w.page }

// TotalPages returns the page count for the current source (minimum 1).
func (w *Window[T]) TotalPages() int {
	if len(w.items) == 0 {
		return 1
	}
	return (len(w.items) + w.pageSize - 1) / w.pageSize
}

// HasNext reports whether a later page exists.
func (w *Window[T]) HasNext() bool { return w.page < w.TotalPages() }

// HasPrev reports whether an earlier page exists.
func (w *Window[T]) HasPrev() bool { return w.page > 1 }

// Next advances one page when possible.
func (w *Window[T]) Next() {
	if w.HasNext() {
		w.page++
	}
}

// Prev steps back one page when possible.
func (w *Window[T]) Prev() {
	if w.HasPrev() {
		w.page--
	}
}

// GoTo jumps to page n, clamped to the valid range.
func (w *Window[T]) GoTo(n int) {
	if n < 1 {
		n = 1
	}
	if t := w.TotalPages(); n > t {
		n = t
	}
	w.page = n
}

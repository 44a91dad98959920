// Package catalog implements the product listing controller: it turns filter
// and search inputs plus a page cursor into an accumulated, display-ready
// product sequence fetched from the commerce API.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/mirajehossain/ecom-customer/pkg/pubsub"

	"github.com/mirajehossain/ecom-customer/internal/api"
	"github.com/mirajehossain/ecom-customer/internal/domain"
)

// minSearchLength is the shortest search term forwarded to the API. Shorter
// terms are low-selectivity noise and are sent as an empty search instead.
const minSearchLength = 3

// defaultPageSize is used when the controller is built without one.
const defaultPageSize = 20

// Lister is the product listing surface the controller consumes.
type Lister interface {
	List(ctx context.Context, filter api.ListFilter) (*api.ProductPage, error)
}

// Filters are the raw listing inputs as entered by the user. Their composite
// value forms the filter signature; any change resets accumulation.
type Filters struct {
	Search     string
	CategoryID int64
	Sort       string
	MinPrice   string
	MaxPrice   string
}

// signature summarizes the filters for change detection. Raw inputs form the
// signature even when the effective query differs (a 2-rune search term still
// changes the signature although it is sent as empty).
func (f Filters) signature() string {
	return fmt.Sprintf("%q|%d|%q|%q|%q", f.Search, f.CategoryID, f.Sort, f.MinPrice, f.MaxPrice)
}

// Snapshot is the controller state published to observers after every
// completed fetch.
type Snapshot struct {
	Products []domain.Product
	Page     int
	Pages    int
	Total    int
	Err      error
}

// Controller accumulates listing pages. Within a stable filter signature
// pages append in server order; a signature change discards the accumulation
// and restarts at page 1. Fetches run on their own goroutines; each request
// is tagged with the signature and dispatch id current at dispatch time, and
// a response whose tags no longer match is discarded without touching state.
type Controller struct {
	lister   Lister
	logger   *slog.Logger
	pageSize int

	mu        sync.Mutex
	filters   Filters
	signature string
	products  []domain.Product
	page      int
	pages     int
	total     int
	inFlight  bool
	dispatch  int
	fetched   bool
	lastErr   error

	changes pubsub.Hub[Snapshot]
}

// NewController creates a listing controller. pageSize <= 0 selects the
// default page size.
func NewController(lister Lister, pageSize int, logger *slog.Logger) *Controller {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Controller{lister: lister, logger: logger, pageSize: pageSize}
}

// Subscribe registers fn to receive a state snapshot after every completed
// fetch, successful or not. Returns an unsubscribe function.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	return c.changes.Subscribe(fn)
}

// SetFilters applies new filter inputs. When their signature differs from
// the current one the accumulation is discarded, the page cursor resets to 1
// and a first-page fetch is dispatched. Unchanged filters are a no-op. The
// returned channel closes once the dispatched fetch (if any) has been
// applied or discarded.
func (c *Controller) SetFilters(ctx context.Context, filters Filters) <-chan struct{} {
	c.mu.Lock()

	sig := filters.signature()
	if c.signature == sig && c.fetchedOrInFlight() {
		c.mu.Unlock()
		return closedChan()
	}

	c.filters = filters
	c.signature = sig
	c.products = nil
	c.page = 1
	c.pages = 0
	c.total = 0
	c.fetched = false
	c.lastErr = nil

	return c.dispatchLocked(ctx, 1)
}

// LoadMore fetches the next page into the accumulation. It is a no-op while
// a fetch is in flight or when no further pages exist. The returned channel
// closes once the dispatched fetch (if any) has completed.
func (c *Controller) LoadMore(ctx context.Context) <-chan struct{} {
	c.mu.Lock()

	if c.inFlight || c.page >= c.pages {
		c.mu.Unlock()
		return closedChan()
	}

	return c.dispatchLocked(ctx, c.page+1)
}

// Retry re-issues the fetch for the current cursor after a failure, keeping
// the accumulation intact. It is a no-op while a fetch is in flight.
func (c *Controller) Retry(ctx context.Context) <-chan struct{} {
	c.mu.Lock()

	if c.inFlight {
		c.mu.Unlock()
		return closedChan()
	}

	page := c.page
	if page < 1 {
		page = 1
	}
	return c.dispatchLocked(ctx, page)
}

// Products returns the accumulated product list.
func (c *Controller) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Page returns the current page cursor.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Pages returns the API-reported total page count.
func (c *Controller) Pages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pages
}

// Total returns the API-reported total result count.
func (c *Controller) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Loading reports whether a fetch is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// HasMore reports whether further pages exist beyond the current cursor.
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page < c.pages
}

// Err returns the error from the most recent fetch under the current
// signature, or nil. A failed fetch keeps prior results visible; Err is how
// the failure surfaces.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Empty reports the "no results" state: a fetch completed successfully with
// zero accumulated items and nothing is in flight. Before the first
// successful fetch, and during fetches, Empty is false.
func (c *Controller) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetched && !c.inFlight && len(c.products) == 0
}

// dispatchLocked starts a fetch for the given page. The caller holds c.mu;
// dispatchLocked releases it.
func (c *Controller) dispatchLocked(ctx context.Context, page int) <-chan struct{} {
	c.inFlight = true
	c.dispatch++
	id := c.dispatch
	sig := c.signature
	filter := c.filterForPage(page)
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := c.lister.List(ctx, filter)
		c.apply(id, sig, page, result, err)
	}()
	return done
}

// filterForPage builds the outbound query. The effective search term drops
// below the minimum-length threshold to empty; category selections always
// include subcategory products server-side.
func (c *Controller) filterForPage(page int) api.ListFilter {
	search := c.filters.Search
	if utf8.RuneCountInString(search) < minSearchLength {
		search = ""
	}
	return api.ListFilter{
		Page:                 page,
		Limit:                c.pageSize,
		Search:               search,
		CategoryID:           c.filters.CategoryID,
		Sort:                 c.filters.Sort,
		MinPrice:             c.filters.MinPrice,
		MaxPrice:             c.filters.MaxPrice,
		IncludeSubcategories: true,
	}
}

func (c *Controller) apply(id int, sig string, page int, result *api.ProductPage, err error) {
	c.mu.Lock()

	// A response tagged with a superseded signature or dispatch id arrived
	// late; its effect belongs to filters that are no longer current.
	if sig != c.signature || id != c.dispatch {
		c.mu.Unlock()
		return
	}

	c.inFlight = false

	if err != nil {
		c.lastErr = err
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.logger.Warn("product listing fetch failed",
			slog.Int("page", page),
			slog.String("error", err.Error()),
		)
		c.changes.Publish(snap)
		return
	}

	if page == 1 {
		c.products = append([]domain.Product(nil), result.Products...)
	} else {
		c.products = append(c.products, result.Products...)
	}
	c.page = page
	c.pages = result.Pagination.Pages
	c.total = result.Pagination.Total
	c.fetched = true
	c.lastErr = nil

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.changes.Publish(snap)
}

func (c *Controller) snapshotLocked() Snapshot {
	products := make([]domain.Product, len(c.products))
	copy(products, c.products)
	return Snapshot{
		Products: products,
		Page:     c.page,
		Pages:    c.pages,
		Total:    c.total,
		Err:      c.lastErr,
	}
}

func (c *Controller) fetchedOrInFlight() bool {
	return c.fetched || c.inFlight
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

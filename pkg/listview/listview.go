// Package listview drives a paginated, searchable admin list with row selection
// and bulk actions, independent of any UI toolkit.
package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hituru/admin-backend/pkg/adminclient"
)

var (
	// ErrSuperseded is returned by a fetch whose response arrived after a newer fetch started
	ErrSuperseded = errors.New("listview: superseded by a newer fetch")
	// ErrUnknownSearchType search type has no fetcher
	ErrUnknownSearchType = errors.New("listview: unknown search type")
)

// Fetcher loads a 1-based page of the unfiltered list
type Fetcher[T any] func(ctx context.Context, page int) (*adminclient.Page[T], error)

// SearchFetcher loads a 1-based page of rows matching query
type SearchFetcher[T any] func(ctx context.Context, query string, page int) (*adminclient.Page[T], error)

// BulkAction applies an action to ids and reports each outcome
type BulkAction func(ctx context.Context, ids []int64) ([]adminclient.ItemResult, error)

// Config wires a Controller to its data source
type Config[T any] struct {
	List              Fetcher[T]
	Search            map[string]SearchFetcher[T]
	ID                func(T) int64
	ErrorMessage      string // shown instead of the underlying error
	DefaultSearchType string
}

// Pagination is the UI view of the server pagination. Page is 0-based.
type Pagination struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// State is an immutable snapshot of a Controller
type State[T any] struct {
	Rows       []T
	Selected   []int64
	Error      string
	Query      string
	SearchType string
	Pagination Pagination
	Loading    bool
}

// Controller holds the inputs (page, query, search type) and outputs (rows, loading, error,
// pagination, selection) of one list view. Safe for concurrent use.
type Controller[T any] struct {
	cfg        Config[T]
	selected   map[int64]struct{}
	rows       []T
	query      string
	searchType string
	err        string
	pagination Pagination
	generation uint64
	mu         sync.Mutex
	loading    bool
}

// New creates a Controller. Nothing is fetched until the first input change or Reload.
func New[T any](cfg Config[T]) *Controller[T] {
	if cfg.ErrorMessage == "" {
		cfg.ErrorMessage = "데이터를 가져오는 중 오류가 발생했습니다."
	}
	return &Controller[T]{
		cfg:        cfg,
		selected:   make(map[int64]struct{}),
		searchType: cfg.DefaultSearchType,
	}
}

// SetPage moves to a 0-based UI page and fetches it
func (c *Controller[T]) SetPage(ctx context.Context, uiPage int) error {
	if uiPage < 0 {
		uiPage = 0
	}
	c.mu.Lock()
	if c.pagination.Page == uiPage {
		c.mu.Unlock()
		return nil
	}
	c.pagination.Page = uiPage
	c.mu.Unlock()
	return c.Reload(ctx)
}

// SetQuery changes the search query, resets to the first page and fetches
func (c *Controller[T]) SetQuery(ctx context.Context, query string) error {
	c.mu.Lock()
	if c.query == query {
		c.mu.Unlock()
		return nil
	}
	c.query = query
	c.pagination.Page = 0
	c.mu.Unlock()
	return c.Reload(ctx)
}

// SetSearchType changes the searched field, resets to the first page and fetches
func (c *Controller[T]) SetSearchType(ctx context.Context, searchType string) error {
	c.mu.Lock()
	if c.searchType == searchType {
		c.mu.Unlock()
		return nil
	}
	c.searchType = searchType
	c.pagination.Page = 0
	c.mu.Unlock()
	return c.Reload(ctx)
}

// Reload fetches the current inputs again. Rows of the previous fetch stay visible
// while loading. Only the most recent fetch may update state; an older response
// is dropped and reported as ErrSuperseded.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	page, query, searchType := c.pagination.Page, c.query, c.searchType
	c.loading = true
	c.mu.Unlock()

	res, err := c.fetch(ctx, page, query, searchType)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return ErrSuperseded
	}
	c.loading = false
	if err != nil {
		c.err = c.cfg.ErrorMessage
		return err
	}
	c.err = ""
	c.apply(res)
	return nil
}

func (c *Controller[T]) fetch(ctx context.Context, uiPage int, query, searchType string) (*adminclient.Page[T], error) {
	apiPage := uiPage + 1
	if query == "" {
		return c.cfg.List(ctx, apiPage)
	}
	search, ok := c.cfg.Search[searchType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchType, searchType)
	}
	return search(ctx, query, apiPage)
}

// apply replaces rows and keeps only selected ids still on the page; c.mu held
func (c *Controller[T]) apply(res *adminclient.Page[T]) {
	c.rows = append([]T(nil), res.Data...)
	c.pagination.TotalPages = res.Pagination.TotalPages
	c.pagination.HasPrev = res.Pagination.PreviousPage != nil
	c.pagination.HasNext = res.Pagination.NextPage != nil

	onPage := make(map[int64]struct{}, len(c.rows))
	for _, r := range c.rows {
		onPage[c.cfg.ID(r)] = struct{}{}
	}
	for id := range c.selected {
		if _, ok := onPage[id]; !ok {
			delete(c.selected, id)
		}
	}
}

// Select marks an id of the current page; ids not on the page are ignored
func (c *Controller[T]) Select(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.rows {
		if c.cfg.ID(r) == id {
			c.selected[id] = struct{}{}
			return
		}
	}
}

// Deselect unmarks an id
func (c *Controller[T]) Deselect(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.selected, id)
}

// SelectAll marks every row of the current page
func (c *Controller[T]) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.rows {
		c.selected[c.cfg.ID(r)] = struct{}{}
	}
}

// DeselectAll clears the selection
func (c *Controller[T]) DeselectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[int64]struct{})
}

// Bulk runs action on the selected ids. Ids that succeeded leave both the rows and the
// selection; failed ids stay so the admin can retry. Nothing is re-fetched.
func (c *Controller[T]) Bulk(ctx context.Context, action BulkAction) ([]adminclient.ItemResult, error) {
	ids := c.selectedIDs()
	if len(ids) == 0 {
		return nil, nil
	}

	results, err := action(ctx, ids)
	if err != nil {
		return nil, err
	}

	done := make(map[int64]struct{}, len(results))
	for _, r := range results {
		if r.OK {
			done[r.ID] = struct{}{}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.rows[:0:0]
	for _, r := range c.rows {
		if _, ok := done[c.cfg.ID(r)]; !ok {
			kept = append(kept, r)
		}
	}
	c.rows = kept
	for id := range done {
		delete(c.selected, id)
	}
	return results, nil
}

func (c *Controller[T]) selectedIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedLocked()
}

// selectedLocked returns the selection in row order; c.mu held
func (c *Controller[T]) selectedLocked() []int64 {
	ids := make([]int64, 0, len(c.selected))
	for _, r := range c.rows {
		if _, ok := c.selected[c.cfg.ID(r)]; ok {
			ids = append(ids, c.cfg.ID(r))
		}
	}
	return ids
}

// State returns a snapshot; later changes to the Controller do not affect it
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{
		Rows:       append([]T(nil), c.rows...),
		Selected:   c.selectedLocked(),
		Loading:    c.loading,
		Error:      c.err,
		Query:      c.query,
		SearchType: c.searchType,
		Pagination: c.pagination,
	}
}

// EachAction adapts a per-id call into a BulkAction fanned out with adminclient.DeleteEach
func EachAction(fn adminclient.DeleteFunc) BulkAction {
	return func(ctx context.Context, ids []int64) ([]adminclient.ItemResult, error) {
		return adminclient.DeleteEach(ctx, ids, fn), nil
	}
}

// BatchAction adapts a batched endpoint (DeleteMany, UnbanMany) into a BulkAction
func BatchAction(fn func(ctx context.Context, ids []int64) (adminclient.BulkResult, error)) BulkAction {
	return func(ctx context.Context, ids []int64) ([]adminclient.ItemResult, error) {
		res, err := fn(ctx, ids)
		if err != nil {
			return nil, err
		}
		return res.Results, nil
	}
}

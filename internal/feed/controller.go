// Package feed owns the headline query and the state of the displayed feed.
//
// A Controller issues one fetch per query change. Fetches run concurrently,
// but results are applied in issue order: every fetch carries a sequence
// number and a completion is discarded unless it belongs to the most recently
// issued fetch.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/matheuskafuri/headlines/internal/debounce"
	"go.uber.org/zap"
)

// ErrorMessage is the single user-facing message for any failed fetch.
const ErrorMessage = "An error has occurred"

// State is a snapshot of the feed. Articles is replaced wholesale on every
// successful fetch and never mutated in place, so snapshots may share it.
type State struct {
	Query    Query
	Articles []Article
	Loading  bool
	Err      string
	// Seq is the sequence number of the latest issued fetch.
	Seq      uint64
	PageSize int
	// Returned is the raw record count of the page Articles came from.
	Returned int
}

// HasPrev reports whether there is a page before the current one.
func (s State) HasPrev() bool {
	return s.Query.Page > 1
}

// HasNext reports whether the last loaded page was full-sized.
func (s State) HasNext() bool {
	return Page{Articles: s.Articles, Returned: s.Returned}.HasNext(s.PageSize)
}

type Options struct {
	PageSize int
	Country  string
	Debounce time.Duration
	Logger   *zap.Logger
}

type Controller struct {
	src       Source
	pageSize  int
	country   string
	log       *zap.Logger
	debouncer *debounce.Debouncer
	changes   chan struct{}

	baseCtx    context.Context
	cancelBase context.CancelFunc
	wg         sync.WaitGroup

	mu       sync.Mutex
	state    State
	issued   uint64
	cancelIn context.CancelFunc
	closed   bool
}

// New creates a controller for category. No fetch is issued until the first
// operation; call Refresh for the initial load.
func New(src Source, category string, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = 5
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		src:        src,
		pageSize:   opts.PageSize,
		country:    opts.Country,
		log:        log,
		debouncer:  debounce.New(opts.Debounce),
		changes:    make(chan struct{}, 1),
		baseCtx:    ctx,
		cancelBase: cancel,
		state: State{
			Query:    Query{Category: category, Page: 1},
			PageSize: opts.PageSize,
		},
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Changes is signalled after every state mutation. Signals coalesce: a
// receiver should re-read State rather than count signals. The channel is
// closed by Close.
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

// SetCategory switches category, returns to page 1 and fetches immediately.
func (c *Controller) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query.Category = category
	c.state.Query.Page = 1
	c.fetchNowLocked()
}

// SetSearch updates the search text and returns to page 1. The fetch is
// debounced; only the last text of a burst is requested.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Query.Search = text
	c.state.Query.Page = 1
	c.notifyLocked()
	c.debouncer.Trigger(c.fetchDebounced)
}

func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query.Page++
	c.fetchNowLocked()
}

// PrevPage is a no-op on the first page.
func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Query.Page <= 1 {
		return
	}
	c.state.Query.Page--
	c.fetchNowLocked()
}

// Refresh fetches the current query again.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchNowLocked()
}

// Close cancels pending and in-flight fetches and waits for them to return.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.debouncer.Stop()
	c.cancelBase()
	c.wg.Wait()
	close(c.changes)
}

func (c *Controller) fetchDebounced() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issueLocked()
}

// fetchNowLocked issues an immediate fetch. A pending debounced search is
// dropped since this fetch already carries the latest search text.
func (c *Controller) fetchNowLocked() {
	if c.closed {
		return
	}
	if c.debouncer.Cancel() {
		c.log.Debug("pending search superseded", zap.String("search", c.state.Query.Search))
	}
	c.issueLocked()
}

func (c *Controller) issueLocked() {
	if c.closed {
		return
	}
	if c.cancelIn != nil {
		c.cancelIn()
	}
	ctx, cancel := context.WithCancel(c.baseCtx)
	c.cancelIn = cancel

	c.issued++
	seq := c.issued
	q := c.state.Query

	c.state.Seq = seq
	c.state.Err = ""
	c.state.Loading = true
	c.notifyLocked()

	c.log.Debug("fetch issued",
		zap.Uint64("seq", seq),
		zap.String("category", q.Category),
		zap.String("search", q.Search),
		zap.Int("page", q.Page),
	)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		start := time.Now()
		p, err := FetchPage(ctx, c.src, q, c.pageSize, c.country)
		c.settle(seq, p, err, time.Since(start))
	}()
}

func (c *Controller) settle(seq uint64, p Page, err error, took time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if seq != c.issued {
		c.log.Debug("discarding stale response",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", c.issued),
		)
		return
	}

	if err != nil {
		c.log.Warn("fetch failed",
			zap.Uint64("seq", seq),
			zap.Duration("took", took),
			zap.Error(err),
		)
		c.state.Err = ErrorMessage
	} else {
		c.log.Info("fetch settled",
			zap.Uint64("seq", seq),
			zap.Int("articles", len(p.Articles)),
			zap.Int("returned", p.Returned),
			zap.Duration("took", took),
		)
		c.state.Articles = p.Articles
		c.state.Returned = p.Returned
	}
	c.state.Loading = false
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	if c.closed {
		return
	}
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// Package engine renders preview tiles of expression trees across a fixed
// worker pool. Every graph edit installs a freshly compiled tree under a new
// version; workers drop jobs whose version is no longer current, and the
// consumer re-checks versions again when compositing, so a superseded tree's
// tiles are never displayed. Version supersession is the only cancellation
// mechanism: in-flight renders finish and have their results discarded.
package engine

import (
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"noisegraph/pkg/expr"
)

// ImageID identifies one preview image, conventionally the graph node id
// whose compiled tree it displays.
type ImageID int

// Tile is one completed 8×8 block of a preview image.
type Tile struct {
	Image   ImageID
	Version int
	Coord   uint8
	Pixels  [TileSize * TileSize]uint8
}

// Update carries one image's freshly compiled tree and view placement.
type Update struct {
	Image ImageID
	Tree  *expr.Expr
	Scale float64
	X     float64
	Y     float64
}

type request struct {
	image   ImageID
	version int
	info    TileRequest
}

type versioned struct {
	version int
	tree    *expr.Expr
}

// Engine owns the worker pool and the per-image version bookkeeping.
type Engine struct {
	mu      sync.RWMutex
	trees   map[ImageID]versioned
	version int

	qmu    sync.Mutex
	qcond  *sync.Cond
	queue  []request
	closed bool

	requests  chan request
	responses chan Tile
	group     *errgroup.Group
	log       *slog.Logger
}

// New starts an engine with the given worker count; zero or negative means
// one worker per available CPU.
func New(workers int, logger *slog.Logger) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		trees:     map[ImageID]versioned{},
		requests:  make(chan request),
		responses: make(chan Tile, TileCount),
		group:     &errgroup.Group{},
		log:       logger,
	}
	e.qcond = sync.NewCond(&e.qmu)

	e.group.Go(e.dispatch)
	for i := 0; i < workers; i++ {
		e.group.Go(e.worker)
	}
	return e
}

// Submit installs new trees for a batch of images under one freshly bumped
// version and enqueues all of their tile jobs. Tile coordinates follow the
// version's shuffle, and jobs for different images of the batch are
// interleaved round-robin so every preview fills in at the same pace.
func (e *Engine) Submit(updates ...Update) {
	if len(updates) == 0 {
		return
	}

	e.mu.Lock()
	e.version++
	version := e.version
	for _, u := range updates {
		e.trees[u.Image] = versioned{version: version, tree: u.Tree}
	}
	e.mu.Unlock()

	coords := ShuffledCoords(version)
	batch := make([]request, 0, len(updates)*TileCount)
	for _, coord := range coords {
		for _, u := range updates {
			batch = append(batch, request{
				image:   u.Image,
				version: version,
				info:    TileRequest{Coord: coord, Scale: u.Scale, X: u.X, Y: u.Y},
			})
		}
	}
	e.enqueue(batch)
	e.log.Debug("submitted previews", "images", len(updates), "version", version)
}

// Forget drops an image's versioned tree so tiles still in flight for it are
// discarded. Used when the editor removes a node.
func (e *Engine) Forget(image ImageID) {
	e.mu.Lock()
	delete(e.trees, image)
	e.mu.Unlock()
}

// Version returns the image's current version, if any tree is installed.
func (e *Engine) Version(image ImageID) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cur, ok := e.trees[image]
	return cur.version, ok
}

// Completed drains every tile finished so far without blocking. Arrival
// order is arbitrary; callers must re-check each tile's version against the
// image's current version before compositing.
func (e *Engine) Completed() []Tile {
	var tiles []Tile
	for {
		select {
		case t := <-e.responses:
			tiles = append(tiles, t)
		default:
			return tiles
		}
	}
}

// Close stops accepting work, waits for the workers to finish and discards
// any remaining completed tiles. The engine must not be used afterwards.
func (e *Engine) Close() error {
	e.qmu.Lock()
	if e.closed {
		e.qmu.Unlock()
		return nil
	}
	e.closed = true
	e.qcond.Broadcast()
	e.qmu.Unlock()

	done := make(chan struct{})
	var err error
	go func() {
		err = e.group.Wait()
		close(done)
	}()

	// Keep draining so workers blocked on a full response channel can exit.
	for {
		select {
		case <-e.responses:
		case <-done:
			return err
		}
	}
}

func (e *Engine) enqueue(batch []request) {
	e.qmu.Lock()
	defer e.qmu.Unlock()
	if e.closed {
		return
	}
	e.queue = append(e.queue, batch...)
	e.qcond.Signal()
}

// dispatch moves queued jobs onto the bounded request channel, giving Submit
// an effectively unbounded queue that never blocks the caller.
func (e *Engine) dispatch() error {
	for {
		e.qmu.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.qcond.Wait()
		}
		if e.closed && len(e.queue) == 0 {
			e.qmu.Unlock()
			close(e.requests)
			return nil
		}
		batch := e.queue
		e.queue = nil
		e.qmu.Unlock()

		for _, req := range batch {
			e.requests <- req
		}
	}
}

// worker renders jobs until the request channel closes. A job whose version
// is no longer current at lookup time is dropped silently; the version may
// still be superseded after rendering starts, which the consumer's final
// check handles.
func (e *Engine) worker() error {
	for req := range e.requests {
		e.mu.RLock()
		cur, ok := e.trees[req.image]
		e.mu.RUnlock()
		if !ok || cur.version != req.version {
			continue
		}

		e.responses <- Tile{
			Image:   req.image,
			Version: req.version,
			Coord:   req.info.Coord,
			Pixels:  RenderTile(cur.tree, req.info),
		}
	}
	return nil
}

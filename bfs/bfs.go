package bfs

import "fmt"

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for the start vertex
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Neighborer
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search over g starting from startID, following
// opts.Dir, applying any number of functional Options.
//
// The returned Result always contains startID (depth 0). Returns
// ErrGraphNil if g is nil, ErrOptionViolation for bad options, or any
// error returned by a WithOnVisit hook; ctx cancellation propagates as
// ctx.Err().
func Walk(g Neighborer, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool),
		res: &Result{
			Order:  make([]string, 0, 8),
			Depth:  make(map[string]int, 8),
			Parent: make(map[string]string, 8),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.NeighborIDs(item.id, w.opts.Dir) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}

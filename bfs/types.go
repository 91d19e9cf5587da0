// Package bfs provides tunable, directional breadth-first search over
// any graph exposing a Neighborer, returning visit order, per-vertex
// depth, and parent links.
//
// The search is decoupled from any concrete graph type: core.Graph
// satisfies Neighborer directly, so core can call into bfs to implement
// Descendants/Neighborhood without bfs importing core (which would
// create an import cycle, since core is the type bfs would otherwise
// need to traverse).
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Direction selects which edge orientation NeighborIDs follows.
type Direction int

const (
	// DirOut follows edges in their natural From→To direction.
	DirOut Direction = iota
	// DirIn follows edges backwards, To→From.
	DirIn
)

// Neighborer is the minimal surface bfs needs from a graph: the set of
// vertex ids reachable from id in one hop, in the given Direction.
// Walk visits neighbors in the order NeighborIDs returns them and does not
// sort them, so Result.Order is only as deterministic as that order.
type Neighborer interface {
	NeighborIDs(id string, dir Direction) []string
}

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound reports an absent start ID. Walk does not
	// return it: Neighborer has no membership query, so an unknown start
	// ID is walked as a vertex with no neighbors.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dir selects which edge orientation to follow. Defaults to DirOut.
	Dir Direction

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: DirOut, no depth
// limit, background context, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Dir:      DirOut,
		MaxDepth: 0,
		OnVisit:  func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects which edge orientation to traverse.
func WithDirection(dir Direction) Option {
	return func(o *Options) { o.Dir = dir }
}

// WithMaxDepth stops the search beyond the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit "no limit"
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence (start vertex first).
//   - Depth: map from vertex ID to its distance (in hops) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Visited reports whether id was reached by the walk.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

package tmplloader

import (
	"context"
	"sync"
)

// IncludeRequest describes one template load.
type IncludeRequest struct {
	// Path is the resolved template file.
	Path string

	// Once makes the request a no-op if Path was already included.
	Once bool

	// Data is the rendering context holding published template data.
	Data *DataContext
}

// Includer is the host primitive that executes a located template file.
type Includer interface {
	Include(ctx context.Context, req IncludeRequest) error
}

// IncluderFunc adapts a function to the Includer interface.
type IncluderFunc func(ctx context.Context, req IncludeRequest) error

// Include calls f(ctx, req).
func (f IncluderFunc) Include(ctx context.Context, req IncludeRequest) error {
	return f(ctx, req)
}

// includeGuard tracks which paths have been included successfully.
type includeGuard struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// skip reports whether a request must be skipped: Once was asked for and
// path has already been included.
func (g *includeGuard) skip(path string, once bool) bool {
	if !once {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	_, seen := g.seen[path]
	return seen
}

// mark records path as included.
func (g *includeGuard) mark(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seen == nil {
		g.seen = make(map[string]struct{})
	}
	g.seen[path] = struct{}{}
}

// OnceIncluder adds require-once tracking to an Includer that has none.
type OnceIncluder struct {
	next  Includer
	guard includeGuard
}

// NewOnceIncluder wraps next with require-once tracking.
func NewOnceIncluder(next Includer) *OnceIncluder {
	return &OnceIncluder{next: next}
}

// Include forwards req unless it is a Once request for a path already
// included through this wrapper.
func (o *OnceIncluder) Include(ctx context.Context, req IncludeRequest) error {
	if o.guard.skip(req.Path, req.Once) {
		return nil
	}
	if err := o.next.Include(ctx, req); err != nil {
		return err
	}
	o.guard.mark(req.Path)
	return nil
}

var (
	_ Includer = IncluderFunc(nil)
	_ Includer = (*OnceIncluder)(nil)
)

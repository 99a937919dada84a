package tmplloader

import (
	"context"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// pongo2SetName names the template set owned by a Pongo2Includer
const pongo2SetName = "tmplloader"

// Pongo2Includer renders located template files with pongo2 and writes the
// output to a writer. Published template data is the pongo2 context, so
// data set under "recipe" is reachable as {{ recipe.title }}.
type Pongo2Includer struct {
	mu    sync.Mutex
	w     io.Writer
	set   *pongo2.TemplateSet
	guard includeGuard
}

// NewPongo2Includer creates an includer writing rendered output to w.
// Paths are resolved as given; relative paths resolve against the
// working directory.
func NewPongo2Includer(w io.Writer) (*Pongo2Includer, error) {
	if w == nil {
		return nil, NewConfigError(ErrMsgNilWriter, "writer", "")
	}
	return &Pongo2Includer{
		w:   w,
		set: pongo2.NewSet(pongo2SetName, pongo2.MustNewLocalFileSystemLoader("")),
	}, nil
}

// Include renders req.Path. Once requests for a path that was already
// rendered by this includer produce no output.
func (p *Pongo2Includer) Include(ctx context.Context, req IncludeRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.guard.skip(req.Path, req.Once) {
		return nil
	}

	tpl, err := p.set.FromFile(req.Path)
	if err != nil {
		return NewRenderError(req.Path, err)
	}

	vars := pongo2.Context{}
	if req.Data != nil {
		vars = pongo2.Context(req.Data.Vars())
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := tpl.ExecuteWriter(vars, p.w); err != nil {
		return NewRenderError(req.Path, err)
	}
	p.guard.mark(req.Path)
	return nil
}

var _ Includer = (*Pongo2Includer)(nil)

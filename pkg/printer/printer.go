package printer

import (
	"io"
	"strings"

	"github.com/arthur-debert/docprint/pkg/docnode"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/logging"
	"github.com/arthur-debert/docprint/pkg/styles"
)

// Options are fixed for the duration of one rendering pass
type Options struct {
	// UseColor wraps keywords, names, locations and descriptions in ANSI
	// styling. When false no escape sequences are written.
	UseColor bool

	// IncludePrivate renders class properties and methods marked private
	IncludePrivate bool

	// Theme supplies the color styles. Nil means styles.Default().
	Theme *styles.Theme
}

// Printer renders a fixed list of root nodes
type Printer struct {
	nodes []docnode.Node
	opts  Options
}

// New creates a printer over nodes. The nodes are only read.
func New(nodes []docnode.Node, opts Options) *Printer {
	return &Printer{nodes: nodes, opts: opts}
}

// Print renders the nodes to w. See Printer.Print.
func Print(w io.Writer, nodes []docnode.Node, opts Options) error {
	return New(nodes, opts).Print(w)
}

// Print runs one rendering pass into w. The first failed write stops the
// pass and is returned as an ErrWriteFailure error wrapping the writer's
// error.
func (p *Printer) Print(w io.Writer) error {
	logger := logging.GetLogger("printer")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	logger.Debug().
		Int("nodes", len(p.nodes)).
		Bool("color", p.opts.UseColor).
		Bool("private", p.opts.IncludePrivate).
		Msg("Rendering documentation")

	theme := p.opts.Theme
	if theme == nil {
		theme = styles.Default()
	}

	ps := &pass{
		w:              w,
		paint:          newPainter(p.opts.UseColor, theme),
		includePrivate: p.opts.IncludePrivate,
	}

	if err := ps.nodes(p.nodes); err != nil {
		logger.Debug().Err(err).Msg("Write failed, aborting render")
		return errors.Wrap(err, errors.ErrWriteFailure, "failed to write documentation")
	}
	return nil
}

// String renders the report into a string
func (p *Printer) String() string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_ = p.Print(&sb)
	return sb.String()
}

// pass holds the state of one rendering call
type pass struct {
	w              io.Writer
	paint          painter
	includePrivate bool
}

func (ps *pass) nodes(nodes []docnode.Node) error {
	for _, node := range sortNodes(nodes) {
		if err := ps.node(node); err != nil {
			return err
		}
	}
	return nil
}

func (ps *pass) node(node docnode.Node) error {
	header := ps.paint.location("Defined in " + node.Location.String())
	if err := ps.write(header + "\n\n"); err != nil {
		return err
	}
	if err := ps.signature(node, 0); err != nil {
		return err
	}
	if err := ps.description(node.Description, 1); err != nil {
		return err
	}
	if err := ps.blank(); err != nil {
		return err
	}
	return ps.body(node)
}

func (ps *pass) description(text string, depth int) error {
	for _, l := range splitLines(text) {
		if err := ps.line(depth, ps.paint.description(l)); err != nil {
			return err
		}
	}
	return nil
}

func (ps *pass) line(depth int, s string) error {
	return ps.write(indent(depth) + s + "\n")
}

func (ps *pass) blank() error {
	return ps.write("\n")
}

func (ps *pass) write(s string) error {
	_, err := io.WriteString(ps.w, s)
	return err
}

package render

import (
	"context"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output, two spaces per nesting level.
	Pretty bool

	// Doctype prefixes the output with <!DOCTYPE html>.
	Doctype bool
}

// Renderer renders vdom trees with a fixed configuration. It holds no
// per-render state and may be shared between goroutines as long as the
// trees it renders are not mutated concurrently.
type Renderer struct {
	config  RendererConfig
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMetrics records every render in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithTracer wraps every render in a span from t.
func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = t
	}
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig, opts ...Option) *Renderer {
	r := &Renderer{config: config}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders a tree to a string.
func (r *Renderer) RenderToString(node *vdom.Element) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams a tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.Element) error {
	return r.RenderContext(context.Background(), w, node)
}

// RenderContext is RenderToWriter with a context for tracing. A nil node
// renders nothing.
func (r *Renderer) RenderContext(ctx context.Context, w io.Writer, node *vdom.Element) error {
	return r.render(ctx, w, node, r.config.Doctype, nil)
}

func (r *Renderer) options(doctype bool) []vdom.RenderOption {
	var opts []vdom.RenderOption
	if r.config.Pretty {
		opts = append(opts, vdom.Pretty())
	}
	if doctype {
		opts = append(opts, vdom.WithDoctype())
	}
	return opts
}

// render writes node to w inside a span. When flush is set and the doctype
// is requested, flush runs once the doctype has been written.
func (r *Renderer) render(ctx context.Context, w io.Writer, node *vdom.Element, doctype bool, flush func()) (err error) {
	if node == nil {
		return nil
	}

	cw := &countingWriter{w: w}

	if r.tracer != nil {
		var span trace.Span
		_, span = r.tracer.Start(ctx, "htmlbuilder.render",
			trace.WithAttributes(
				attribute.String("htmlbuilder.root", node.Tag()),
				attribute.Bool("htmlbuilder.pretty", r.config.Pretty),
				attribute.Bool("htmlbuilder.doctype", doctype),
			),
		)
		defer func() {
			span.SetAttributes(attribute.Int64("htmlbuilder.bytes", cw.n))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			span.End()
		}()
	}

	start := time.Now()
	err = r.write(cw, node, doctype, flush)
	if r.metrics != nil {
		r.metrics.observe(r.mode(), cw.n, time.Since(start), err)
	}
	return err
}

func (r *Renderer) write(w io.Writer, node *vdom.Element, doctype bool, flush func()) error {
	if !doctype || flush == nil {
		return node.RenderTo(w, r.options(doctype)...)
	}
	prefix := vdom.Doctype
	if r.config.Pretty {
		prefix += "\n"
	}
	if _, err := io.WriteString(w, prefix); err != nil {
		return err
	}
	flush()
	return node.RenderTo(w, r.options(false)...)
}

func (r *Renderer) mode() string {
	if r.config.Pretty {
		return "pretty"
	}
	return "compact"
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

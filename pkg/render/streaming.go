package render

import (
	"context"
	"io"
	"net/http"

	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w. If w
// implements http.Flusher, content is flushed after the doctype and again
// after the tree.
func NewStreamingRenderer(w io.Writer, config RendererConfig, opts ...Option) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config, opts...),
		flusher:  flusher,
		w:        w,
	}
}

// Stream renders node to the underlying writer.
func (s *StreamingRenderer) Stream(ctx context.Context, node *vdom.Element) error {
	return s.stream(ctx, node, s.config.Doctype)
}

func (s *StreamingRenderer) stream(ctx context.Context, node *vdom.Element, doctype bool) error {
	if node == nil {
		return nil
	}

	if err := s.render(ctx, s.w, node, doctype, s.flush); err != nil {
		return err
	}
	s.flush()
	return nil
}

// StreamPage assembles page and streams it as a complete document.
func (s *StreamingRenderer) StreamPage(ctx context.Context, page PageData) error {
	root, err := BuildPage(page)
	if err != nil {
		return err
	}
	return s.stream(ctx, root, true)
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with a counting Flush method.
// This is useful for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}

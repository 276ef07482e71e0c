package render

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/htmlbuilder/pkg/attr"
	"github.com/vango-dev/htmlbuilder/pkg/el"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func samplePage() *vdom.Element {
	return el.Html(nil,
		el.Head(nil, el.Title(nil, "Hi")),
		el.Body(nil,
			el.Div(vdom.Attrs(attr.Class("box")), "hello", el.Br(nil)),
		),
	)
}

var errWrite = errors.New("write failed")

// failingWriter accepts limit writes and then fails.
type failingWriter struct {
	limit  int
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.limit {
		return 0, errWrite
	}
	w.writes++
	return len(p), nil
}

// recordingTracer records the spans it starts.
type recordingTracer struct {
	noop.Tracer

	mu    sync.Mutex
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, attrs: append([]attribute.KeyValue{}, cfg.Attributes()...)}
	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordingSpan struct {
	noop.Span

	name   string
	attrs  []attribute.KeyValue
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.attrs = append(s.attrs, kv...)
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) {
	s.status = code
}

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}

func (s *recordingSpan) End(...trace.SpanEndOption) {
	s.ended = true
}

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

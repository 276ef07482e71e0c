package render

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	w := &FlushableWriter{Writer: &buf}

	s := NewStreamingRenderer(w, RendererConfig{Doctype: true, Pretty: true})
	if err := s.Stream(context.Background(), samplePage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.FlushCount != 2 {
		t.Errorf("expected 2 flushes, got %d", w.FlushCount)
	}
	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>\n<html>\n") {
		t.Errorf("unexpected output start: %q", buf.String())
	}
}

func TestStreamingMatchesRenderer(t *testing.T) {
	for _, config := range []RendererConfig{
		{},
		{Pretty: true},
		{Doctype: true},
		{Pretty: true, Doctype: true},
	} {
		var buf bytes.Buffer
		if err := NewStreamingRenderer(&buf, config).Stream(context.Background(), samplePage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, err := NewRenderer(config).RenderToString(samplePage())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != want {
			t.Errorf("config %+v: got %q, want %q", config, buf.String(), want)
		}
	}
}

func TestStreamingWithoutDoctypeFlushesOnce(t *testing.T) {
	w := &FlushableWriter{Writer: &bytes.Buffer{}}
	if err := NewStreamingRenderer(w, RendererConfig{}).Stream(context.Background(), samplePage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.FlushCount != 1 {
		t.Errorf("expected 1 flush, got %d", w.FlushCount)
	}
}

func TestStreamingNilRoot(t *testing.T) {
	w := &FlushableWriter{Writer: &bytes.Buffer{}}
	if err := NewStreamingRenderer(w, RendererConfig{Doctype: true}).Stream(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.FlushCount != 0 {
		t.Errorf("expected no flushes, got %d", w.FlushCount)
	}
}

func TestStreamPageToResponseRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	s := NewStreamingRenderer(rec, RendererConfig{})
	if err := s.StreamPage(context.Background(), PageData{Title: "T"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Flushed {
		t.Error("expected recorder to be flushed")
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html><html lang='en'>") {
		t.Errorf("unexpected body: %q", body)
	}
	if !strings.Contains(body, "<title>T</title>") {
		t.Errorf("missing title: %q", body)
	}
}

func TestStreamingCountsDoctypeBytes(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	tracer := &recordingTracer{}

	var buf bytes.Buffer
	w := &FlushableWriter{Writer: &buf}
	s := NewStreamingRenderer(w, RendererConfig{Doctype: true, Pretty: true}, WithMetrics(m), WithTracer(tracer))
	if err := s.Stream(context.Background(), samplePage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var metric dto.Metric
	if err := m.renderBytes.Write(&metric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := metric.GetHistogram().GetSampleSum(); got != float64(buf.Len()) {
		t.Errorf("bytes observed = %v, want %d", got, buf.Len())
	}

	if len(tracer.spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(tracer.spans))
	}
	span := tracer.spans[0]
	if v, ok := span.attr("htmlbuilder.doctype"); !ok || !v.AsBool() {
		t.Errorf("doctype attribute = %v, want true", v)
	}
	if v, ok := span.attr("htmlbuilder.bytes"); !ok || v.AsInt64() != int64(buf.Len()) {
		t.Errorf("bytes attribute = %v, want %d", v, buf.Len())
	}
	if w.FlushCount != 2 {
		t.Errorf("expected 2 flushes, got %d", w.FlushCount)
	}
}

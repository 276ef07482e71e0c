// Package render renders vdom trees to writers with optional instrumentation.
//
// The vdom package already renders a tree to a string. This package adds
// what servers and tools need around that:
//
//   - A configured Renderer writing to any io.Writer
//   - Streaming output that flushes after the doctype and after the tree
//   - Full page assembly from a title, stylesheets, scripts and body content
//   - Prometheus metrics and OpenTelemetry spans per render
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true, Doctype: true})
//	html, err := renderer.RenderToString(root)
//
// # Instrumentation
//
//	metrics := render.NewMetrics(render.WithRegistry(reg))
//	renderer := render.NewRenderer(config,
//	    render.WithMetrics(metrics),
//	    render.WithTracer(otel.Tracer("site")),
//	)
//
// Text and attribute values are written verbatim, exactly as vdom renders them.
package render

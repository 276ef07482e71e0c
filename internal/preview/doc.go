// Package preview serves a live preview of a document description.
//
// The server renders the document on GET /, injecting a small script that
// connects to /_htmlbuilder/reload over a WebSocket. A polling watcher
// re-decodes the document when it changes on disk and tells connected
// browsers to reload, or to show an error overlay when the document no
// longer builds.
//
// # Endpoints
//
//	GET /                     the rendered document
//	GET /_htmlbuilder/reload  WebSocket reload channel
//	GET /metrics              Prometheus metrics
//	GET /healthz              liveness probe
//
// # Usage
//
//	srv := preview.NewServer(preview.Config{
//	    Document: "page.yaml",
//	    Address:  "localhost:4000",
//	})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package preview

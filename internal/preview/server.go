package preview

import (
	"context"
	stderrors "errors"
	"html"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/htmlbuilder/internal/document"
	"github.com/vango-dev/htmlbuilder/internal/errors"
	"github.com/vango-dev/htmlbuilder/pkg/el"
	"github.com/vango-dev/htmlbuilder/pkg/render"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

// Config configures the preview server.
type Config struct {
	// Document is the path of the description to preview.
	Document string

	// Address is the listen address (default: "localhost:4000").
	Address string

	// Render controls output formatting.
	Render render.RendererConfig

	// WatchInterval is the document polling interval.
	WatchInterval time.Duration

	// Namespace prefixes metric names (default: "htmlbuilder").
	Namespace string

	// Registry receives the server's metrics. A fresh registry is used
	// when nil.
	Registry *prometheus.Registry

	// Logger receives request and reload logs (default: slog.Default()).
	Logger *slog.Logger

	// Load decodes the document (default: document.Load).
	Load func(path string) (*vdom.Element, error)
}

// Server is the live preview HTTP server.
type Server struct {
	config   Config
	logger   *slog.Logger
	renderer *render.Renderer
	metrics  *render.Metrics
	hub      *Hub
	watcher  *Watcher
	registry *prometheus.Registry
	router   chi.Router

	reloads *prometheus.CounterVec
	clients prometheus.Gauge

	mu       sync.RWMutex
	page     *vdom.Element
	buildErr error
}

// NewServer creates a preview server. The document is not read until
// Reload or Run is called.
func NewServer(config Config) *Server {
	if config.Address == "" {
		config.Address = "localhost:4000"
	}
	if config.Namespace == "" {
		config.Namespace = "htmlbuilder"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Load == nil {
		config.Load = document.Load
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
		config.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(config.Registry)
	s := &Server{
		config:   config,
		logger:   config.Logger.With("component", "preview"),
		hub:      NewHub(),
		registry: config.Registry,
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "preview",
			Name:      "reloads_total",
			Help:      "Document reloads by result",
		}, []string{"result"}),
		clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: "preview",
			Name:      "reload_clients",
			Help:      "Connected live reload clients",
		}),
	}

	s.metrics = render.NewMetrics(
		render.WithRegistry(config.Registry),
		render.WithNamespace(config.Namespace),
	)
	s.renderer = render.NewRenderer(config.Render, render.WithMetrics(s.metrics))
	s.hub.onCount = func(n int) { s.clients.Set(float64(n)) }

	s.watcher = NewWatcher(WatcherConfig{
		Paths:    []string{config.Document},
		Interval: config.WatchInterval,
	})
	s.watcher.OnChange(func(path string) {
		s.logger.Info("document changed", "path", path)
		s.Reload()
	})

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle(ReloadPath, s.hub)
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the reload hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Reload decodes the document again and notifies connected browsers. After
// a failed reload GET / serves an error page until the next success.
func (s *Server) Reload() error {
	root, err := s.config.Load(s.config.Document)
	if err == nil {
		root, err = s.withReloadScript(root)
	}

	s.mu.Lock()
	s.page, s.buildErr = root, err
	s.mu.Unlock()

	if err != nil {
		s.reloads.WithLabelValues("error").Inc()
		s.logger.Warn("document failed to build", "path", s.config.Document, "error", err)
		s.hub.NotifyError(describeError(err))
		return err
	}

	s.reloads.WithLabelValues("ok").Inc()
	s.logger.Info("document rebuilt", "path", s.config.Document, "clients", s.hub.ClientCount())
	s.hub.ClearError()
	s.hub.NotifyReload()
	return nil
}

// withReloadScript appends the reload client to the document body. Trees
// that are not an <html> document are wrapped in one.
func (s *Server) withReloadScript(root *vdom.Element) (*vdom.Element, error) {
	script := render.ScriptTag{Inline: ClientScript}

	if root.Tag() != "html" {
		return render.BuildPage(render.PageData{
			Title:   filepath.Base(s.config.Document),
			Body:    []any{root},
			Scripts: []render.ScriptTag{script},
		})
	}

	for _, child := range root.Children() {
		if body, ok := child.(*vdom.Element); ok && body.Tag() == "body" {
			return root, body.SetChildren(body.Children(), el.Script(nil, ClientScript))
		}
	}
	return root, root.SetChildren(root.Children(), el.Body(nil, el.Script(nil, ClientScript)))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	page, buildErr := s.page, s.buildErr
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if buildErr != nil || page == nil {
		if buildErr == nil {
			buildErr = stderrors.New("document has not been loaded")
		}
		w.WriteHeader(http.StatusInternalServerError)
		if err := s.renderer.RenderPage(r.Context(), w, errorPage(buildErr)); err != nil {
			s.logger.Error("error page render failed", "error", err)
		}
		return
	}

	if err := render.NewStreamingRenderer(w, s.config.Render, render.WithMetrics(s.metrics)).Stream(r.Context(), page); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}

func errorPage(err error) render.PageData {
	return render.PageData{
		Title: "Build error",
		Body: []any{
			el.H1(nil, "Build error"),
			el.Pre(nil, html.EscapeString(describeError(err))),
		},
		Scripts: []render.ScriptTag{{Inline: ClientScript}},
	}
}

func describeError(err error) string {
	var be *errors.BuildError
	if stderrors.As(err, &be) && be.Location != nil && be.Location.Line > 0 {
		return be.Location.String() + ": " + be.Error()
	}
	return err.Error()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// Run loads the document, starts the watcher and serves until ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.New(errors.CodePreviewListen).
			WithDetail(s.config.Address).
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// A document that fails to build is reported in the browser.
	_ = s.Reload()

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.watcher.Start(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		s.hub.Close()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("preview server listening", "url", "http://"+ln.Addr().String(), "document", s.config.Document)
	if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/internal/preview"
	"github.com/vango-dev/htmlbuilder/pkg/render"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve [FILE]",
		Short: "Start the live preview server",
		Long: `Serve the rendered document and reload connected browsers when the
file changes. Build errors are shown in the browser until fixed.

Examples:
  htmlbuilder serve page.yaml
  htmlbuilder serve --port=8080 --host=0.0.0.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := preview.NewServer(preview.Config{
				Document:      documentPath(cfg, args),
				Address:       cfg.PreviewAddress(),
				Render:        render.RendererConfig{Pretty: cfg.Render.Pretty, Doctype: cfg.Render.Doctype},
				WatchInterval: time.Duration(cfg.Preview.WatchInterval),
				Namespace:     cfg.Metrics.Namespace,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from htmlbuilder.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlbuilder.json)")

	return cmd
}

package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/internal/document"
	"github.com/vango-dev/htmlbuilder/internal/publish"
	"github.com/vango-dev/htmlbuilder/pkg/render"
)

func publishCmd(flags *globalFlags) *cobra.Command {
	var (
		bucket string
		key    string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish [FILE]",
		Short: "Render a document and upload it to S3",
		Long: `Render the document and upload it to an S3 bucket using the default
AWS credential chain.

The object key defaults to the document name with an .html extension.

Examples:
  htmlbuilder publish page.yaml --bucket my-site
  htmlbuilder publish page.yaml --bucket my-site --key about/index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}

			path := documentPath(cfg, args)
			root, err := document.Load(path)
			if err != nil {
				return err
			}
			if key == "" {
				key = htmlName(path)
			}

			pub, err := publish.NewFromEnvironment(cmd.Context(), publish.Config{
				Bucket:       cfg.Publish.Bucket,
				Prefix:       cfg.Publish.Prefix,
				CacheControl: cfg.Publish.CacheControl,
			}, cfg.Publish.Region)
			if err != nil {
				return err
			}

			renderer := render.NewRenderer(render.RendererConfig{Pretty: cfg.Render.Pretty, Doctype: cfg.Render.Doctype})
			res, err := pub.PublishElement(cmd.Context(), key, root, renderer)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Published s3://%s/%s (%d bytes)", res.Bucket, res.Key, res.Bytes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket (default from htmlbuilder.json)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key (default: document name with .html)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from htmlbuilder.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from the environment)")

	return cmd
}

// htmlName replaces the extension of path's base name with .html.
func htmlName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

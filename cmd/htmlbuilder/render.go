package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/internal/document"
	"github.com/vango-dev/htmlbuilder/pkg/render"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		pretty  bool
		doctype bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render a document to HTML",
		Long: `Render a JSON or YAML document description to HTML.

Without FILE the document named in htmlbuilder.json is rendered.
Flags override the render section of htmlbuilder.json.

Examples:
  htmlbuilder render page.yaml
  htmlbuilder render page.json --pretty --doctype -o index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			rc := render.RendererConfig{Pretty: cfg.Render.Pretty, Doctype: cfg.Render.Doctype}
			if cmd.Flags().Changed("pretty") {
				rc.Pretty = pretty
			}
			if cmd.Flags().Changed("doctype") {
				rc.Doctype = doctype
			}

			root, err := document.Load(documentPath(cfg, args))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := render.NewRenderer(rc).RenderToWriter(&buf, root); err != nil {
				return err
			}
			if output == "" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := writeFile(output, buf.Bytes()); err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent output two spaces per level")
	cmd.Flags().BoolVarP(&doctype, "doctype", "d", false, "Prefix output with <!DOCTYPE html>")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// writeFile writes data to path, reporting the error from Close.
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

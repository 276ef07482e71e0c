package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template    string
		title       string
		description string
		bucket      string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create htmlbuilder.json and a starter document",
		Long: fmt.Sprintf(`Create htmlbuilder.json and a starter document in DIR (default: the
current directory).

Templates: %s

Examples:
  htmlbuilder init
  htmlbuilder init site --template json --title "My site"`, strings.Join(templates.List(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			err = tmpl.Create(dir, templates.Config{
				Title:       title,
				Description: description,
				Bucket:      bucket,
			}, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "Created %s", filepath.Join(dir, tmpl.Document))
			fmt.Fprintf(out, "  Run 'htmlbuilder serve' in %s to preview it\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "yaml", "Template to use")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().StringVar(&description, "description", "", "Meta description")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Publish bucket")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}

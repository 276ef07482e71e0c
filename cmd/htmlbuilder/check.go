package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/internal/document"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Validate a document and report misplaced attributes",
		Long: `Build the document and report attributes used on elements they do
not belong to, such as href on a <div>.

Construction already rejects invalid attributes, children and nesting;
check adds the placement report on top.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			path := documentPath(cfg, args)

			root, err := document.Load(path)
			if err != nil {
				return err
			}

			issues := vdom.CheckPlacement(root)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				warn(out, "%s", issue)
			}
			if len(issues) > 0 {
				return fmt.Errorf("%s: %d misplaced attribute(s)", path, len(issues))
			}
			success(out, "%s is valid", path)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

func tagsCmd() *cobra.Command {
	var attributes bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List known elements or attributes",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if attributes {
				for _, k := range vdom.AttrKinds() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", k, belongsTo(k), k.Description())
				}
				return tw.Flush()
			}

			for _, k := range vdom.Kinds() {
				marker := ""
				if k.SelfClosing() {
					marker = "self-closing"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k, marker, k.Description())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&attributes, "attributes", "a", false, "List attributes and the elements they belong to")

	return cmd
}

func belongsTo(k vdom.AttrKind) string {
	kinds := k.BelongsTo()
	if len(kinds) == 0 {
		return "global"
	}
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return strings.Join(names, ",")
}

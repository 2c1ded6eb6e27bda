package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"fstruct/internal/domain"
	"fstruct/internal/services"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var show, shot string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the tree create would build, without touching disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tree := services.PreviewTree(show, shot, cfg.Artist)
			fmt.Fprintln(cmd.OutOrStdout(), renderTree(tree))
			return nil
		},
	}
	cmd.Flags().StringVarP(&show, "show", "s", "", "Show name")
	cmd.Flags().StringVar(&shot, "shot", "", "Shot name")
	return cmd
}

func renderTree(root *domain.Node) string {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedRounded)
	appendNode(lw, root)
	return lw.Render()
}

func appendNode(lw list.Writer, node *domain.Node) {
	lw.AppendItem(node.Name)
	if node.IsLeaf() {
		return
	}
	lw.Indent()
	for _, child := range node.Children {
		appendNode(lw, child)
	}
	lw.UnIndent()
}

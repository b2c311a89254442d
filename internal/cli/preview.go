package cli

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/icon"
)

const (
	defaultPreviewCell = 128
	maxPreviewCell     = 1024
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output string // output file
	cell   int    // cell side in pixels
}

// previewCommand creates the preview command: a one-row contact sheet of
// the full icon size ladder, for eyeballing which ornaments kick in at
// which size.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{cell: defaultPreviewCell}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a contact sheet of all icon sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "icon_preview.png", "output file")
	cmd.Flags().IntVar(&opts.cell, "cell", opts.cell, "cell size in pixels")

	return cmd
}

func (c *CLI) runPreview(opts previewOpts) error {
	if opts.cell < 16 || opts.cell > maxPreviewCell {
		return fmt.Errorf("invalid cell size %d (must be 16..%d)", opts.cell, maxPreviewCell)
	}

	sheet := icon.Sheet(icon.WindowsSizes, opts.cell)
	if err := imaging.Save(sheet, opts.output); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}

	printSuccess("Preview sheet with %d sizes", len(icon.WindowsSizes))
	printFile(opts.output)
	return nil
}

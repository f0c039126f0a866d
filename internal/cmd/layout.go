package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/recycle/internal/config"
	"github.com/charmbracelet/recycle/internal/recycle"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print how the list would be laid out",
	Long: `Resolve the configured layout against a viewport and print the cell
footprint, the size of the cell pool and the size of the scrollable content,
without starting the interface.`,
	Example: `
# Resolve the configured layout for an 80x24 terminal
recycle layout

# A flexible grid on a wide terminal with a million items
recycle layout -g --width 200 --height 50 --count 1000000
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		count, _ := cmd.Flags().GetInt("count")

		cfg, err := setupConfig(cmd)
		if err != nil {
			return err
		}
		return writeLayoutReport(cmd.OutOrStdout(), cfg.Layout, width, height, count)
	},
}

func init() {
	layoutCmd.Flags().Int("width", 80, "Viewport width in cells")
	layoutCmd.Flags().Int("height", 24, "Viewport height in cells")
	layoutCmd.Flags().IntP("count", "n", 1000, "Number of items")
}

func writeLayoutReport(w io.Writer, opts config.LayoutOptions, width, height, count int) error {
	layout := opts.Recycle()
	horizontal := opts.Horizontal()
	viewport := recycle.Vec2{X: float64(width), Y: float64(height)}
	item := recycle.Vec2{X: float64(opts.ItemWidth), Y: float64(opts.ItemHeight)}

	res, err := recycle.Resolve(layout, viewport, item, horizontal)
	if err != nil {
		return err
	}
	content := recycle.ContentSize(layout, res, count, horizontal)

	row := func(name string, value any) {
		_, _ = fmt.Fprintf(w, "%-10s %v\n", name, value)
	}
	row("mode", layout.Kind)
	row("axis", opts.Axis)
	if layout.Kind == recycle.LayoutGrid {
		row("constraint", fmt.Sprintf("%s %d", layout.Constraint, layout.ConstraintCount))
	}
	row("viewport", fmt.Sprintf("%dx%d", width, height))
	row("item", num(res.ItemSize.X)+"x"+num(res.ItemSize.Y))
	row("footprint", num(res.Footprint))
	row("per entry", res.ItemsPerEntry)
	row("entries", res.Entries)
	row("pool", res.PoolSize)
	row("band", num(res.Band))
	row("count", count)
	row("content", num(content.X)+"x"+num(content.Y))
	return nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

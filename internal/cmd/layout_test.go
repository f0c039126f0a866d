package cmd

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/recycle/internal/config"
	"github.com/charmbracelet/recycle/internal/recycle"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/require"
)

func TestLayoutReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opts          func(*config.LayoutOptions)
		width, height int
		count         int
	}{
		{
			name:   "default",
			opts:   func(*config.LayoutOptions) {},
			width:  80,
			height: 24,
			count:  1000,
		},
		{
			name: "flexible_grid",
			opts: func(o *config.LayoutOptions) {
				o.Mode = config.LayoutModeGrid
				o.ItemWidth, o.ItemHeight = 10, 3
				o.SpacingX, o.SpacingY = 1, 1
			},
			width:  80,
			height: 24,
			count:  1000,
		},
		{
			name: "horizontal_fixed_grid",
			opts: func(o *config.LayoutOptions) {
				o.Mode = config.LayoutModeGrid
				o.Axis = config.AxisHorizontal
				o.Constraint = config.ConstraintFixed
				o.Count = 2
				o.ItemWidth, o.ItemHeight = 12, 4
				o.SpacingX, o.SpacingY = 2, 0
				o.Padding = config.Padding{Left: 1, Right: 1}
			},
			width:  60,
			height: 8,
			count:  1_000_000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := config.Defaults().Layout
			tt.opts(&opts)

			var b bytes.Buffer
			require.NoError(t, writeLayoutReport(&b, opts, tt.width, tt.height, tt.count))
			golden.RequireEqual(t, b.Bytes())
		})
	}

	t.Run("zero_footprint", func(t *testing.T) {
		t.Parallel()
		opts := config.Defaults().Layout
		opts.ItemHeight = 0

		var b bytes.Buffer
		err := writeLayoutReport(&b, opts, 80, 24, 10)
		var cfgErr *recycle.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		require.Empty(t, b.String())
	})
}

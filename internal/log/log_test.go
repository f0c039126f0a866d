package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	file := filepath.Join(t.TempDir(), "logs", "recycle.log")
	Setup(file, true)
	require.True(t, Initialized())

	slog.Debug("Recycled instance", "slot", 3)

	bts, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(bts), `"msg":"Recycled instance"`)
	require.Contains(t, string(bts), `"slot":3`)
}

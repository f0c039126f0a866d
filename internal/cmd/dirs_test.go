package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDirs(t *testing.T) {
	cfgDir, dataDir, cwd := t.TempDir(), t.TempDir(), t.TempDir()
	t.Setenv("RECYCLE_GLOBAL_CONFIG", cfgDir)
	t.Setenv("RECYCLE_GLOBAL_DATA", dataDir)

	t.Run("config only", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, writeDirs(&b, cwd, true, false))
		assert.Equal(t, cfgDir+"\n", b.String())
	})

	t.Run("data only", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, writeDirs(&b, cwd, false, true))
		assert.Equal(t, dataDir+"\n", b.String())
	})

	t.Run("everything", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, writeDirs(&b, cwd, false, false))
		assert.Contains(t, b.String(), "Config directory:  "+cfgDir+"\n")
		assert.Contains(t, b.String(), "Project directory: "+filepath.Join(cwd, ".recycle")+"\n")
		assert.Contains(t, b.String(), filepath.Join(cwd, ".recycle", "logs", "recycle.log"))
	})

	t.Run("both flags", func(t *testing.T) {
		var b bytes.Buffer
		assert.Error(t, writeDirs(&b, cwd, true, true))
		assert.Empty(t, b.String())
	})
}

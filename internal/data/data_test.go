package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset(t *testing.T) {
	t.Parallel()

	t.Run("should number items from zero", func(t *testing.T) {
		t.Parallel()
		d := New()

		require.Equal(t, 25, d.Hydrate(25))

		assert.Equal(t, 25, d.Len())
		item, ok := d.At(24)
		require.True(t, ok)
		assert.Equal(t, "ID : 24", item.String())
		assert.Equal(t, "Item - 24", item.Name())
	})

	t.Run("should reject out of range indices", func(t *testing.T) {
		t.Parallel()
		d := New()
		d.Hydrate(3)

		_, ok := d.At(3)
		assert.False(t, ok)
		_, ok = d.At(-1)
		assert.False(t, ok)
	})

	t.Run("should start a new generation on every hydrate", func(t *testing.T) {
		t.Parallel()
		d := New()
		d.Hydrate(10)
		first := d.Generation()
		d.Hydrate(2)

		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, d.Generation())
		assert.Equal(t, 2, d.Len())
	})

	t.Run("should clamp negative sizes", func(t *testing.T) {
		t.Parallel()
		d := New()
		assert.Zero(t, d.Hydrate(-5))
	})
}

func TestItemAccent(t *testing.T) {
	t.Parallel()

	item := Item{ID: 1234}
	accent := item.Accent(6)
	assert.GreaterOrEqual(t, accent, 0)
	assert.Less(t, accent, 6)
	assert.Equal(t, accent, item.Accent(6))
	assert.Zero(t, item.Accent(0))
}

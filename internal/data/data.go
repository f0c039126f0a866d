// Package data is the demo's logical dataset: a flat list of numbered items
// the recycling list never materializes as widgets.
package data

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Presets are the dataset sizes offered by the demo.
var Presets = []int{1_000, 50_000, 250_000, 1_000_000}

type Item struct {
	ID int
}

func (i Item) String() string {
	return fmt.Sprintf("ID : %d", i.ID)
}

// Name is the label given to the widget currently showing the item.
func (i Item) Name() string {
	return fmt.Sprintf("Item - %d", i.ID)
}

// Accent deterministically picks one of n accents for the item.
func (i Item) Accent(n int) int {
	if n <= 0 {
		return 0
	}
	return int(xxh3.HashString(i.Name()) % uint64(n))
}

// Dataset holds the items. Each Hydrate starts a new generation with its own
// ID so log lines from different runs can be told apart.
type Dataset struct {
	generation string
	items      []Item
}

func New() *Dataset {
	return &Dataset{}
}

// Hydrate replaces the dataset with n items numbered from zero and returns
// the new length.
func (d *Dataset) Hydrate(n int) int {
	n = max(0, n)
	if cap(d.items) < n {
		d.items = make([]Item, n)
	}
	d.items = d.items[:n]
	for i := range d.items {
		d.items[i] = Item{ID: i}
	}
	d.generation = uuid.NewString()
	slog.Info(fmt.Sprintf("%d elements created and added to the list", n), "generation", d.generation)
	return n
}

func (d *Dataset) Len() int {
	return len(d.items)
}

// At returns the item at index. ok is false when index is out of range.
func (d *Dataset) At(index int) (item Item, ok bool) {
	if index < 0 || index >= len(d.items) {
		return Item{}, false
	}
	return d.items[index], true
}

func (d *Dataset) Generation() string {
	return d.generation
}

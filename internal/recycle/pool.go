package recycle

import (
	"iter"
	"log/slog"
)

// Pool is the fixed set of physical instances and their logical indices.
// items and indices are indexed identically.
type Pool[T Instance] struct {
	items   []T
	indices []int
}

// Build makes the pool hold exactly count instances, reusing the ones it
// already has. Fresh pools reuse prototype as slot 0 when it is already
// parented under the content. created is called for every instantiated
// instance with its slot.
func (p *Pool[T]) Build(count int, prototype T, factory Factory[T], created func(T, int)) {
	count = max(0, count)
	for len(p.items) > count {
		last := len(p.items) - 1
		factory.Destroy(p.items[last])
		p.items = p.items[:last]
	}

	start := len(p.items)
	if start == 0 && count > 0 && factory.Contains(prototype) {
		p.items = append(p.items, prototype)
		start = 1
	}
	for i := start; i < count; i++ {
		inst := factory.Instantiate(prototype)
		p.items = append(p.items, inst)
		if created != nil {
			created(inst, i)
		}
	}

	p.indices = make([]int, count)
	for i := range p.indices {
		p.indices[i] = i
	}
	slog.Debug("Built instance pool", "size", count, "reused", start)
}

// Activate shows the first n instances and hides the rest. Indices are reset
// to their slot.
func (p *Pool[T]) Activate(n int) {
	for i, inst := range p.items {
		inst.SetActive(i < n)
		p.indices[i] = i
	}
}

// Unload destroys every instance. It is safe to call on an empty or
// partially built pool, and more than once.
func (p *Pool[T]) Unload(factory Factory[T]) {
	for i := len(p.items) - 1; i >= 0; i-- {
		factory.Destroy(p.items[i])
	}
	p.items = nil
	p.indices = nil
}

func (p *Pool[T]) Len() int {
	return len(p.items)
}

func (p *Pool[T]) At(slot int) T {
	return p.items[slot]
}

// All iterates over the instances in slot order.
func (p *Pool[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, inst := range p.items {
			if !yield(inst) {
				return
			}
		}
	}
}

// Index returns the logical index bound to slot.
func (p *Pool[T]) Index(slot int) int {
	return p.indices[slot]
}

// Indices returns a copy of the logical index of every slot.
func (p *Pool[T]) Indices() []int {
	out := make([]int, len(p.indices))
	copy(out, p.indices)
	return out
}

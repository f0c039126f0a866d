package recycle

import (
	"log/slog"
)

// BindFunc receives an instance and the logical index it now shows.
//
// Scrolling the host or calling SetItemsCount from inside a BindFunc is not
// supported: the pool is mid-pass. Such calls are dropped with a warning.
type BindFunc[T Instance] func(inst T, index int)

// Recycler maps a fixed pool of instances onto a logical list of any length.
type Recycler[T Instance] struct {
	host      Host[T]
	prototype T
	onCreated BindFunc[T]
	onBind    BindFunc[T]

	pool  Pool[T]
	res   Resolution
	count int

	unsubscribe func()
	busy        bool
}

// New resolves the host's layout, builds the instance pool and subscribes to
// scroll changes. onCreated is called once per instantiated clone with its
// slot; onBind whenever an instance is bound to a new logical index. Both may
// be nil.
//
// A ConfigurationError is returned when the content lacks a layout or a
// size fitter.
func New[T Instance](prototype T, host Host[T], onCreated, onBind BindFunc[T]) (*Recycler[T], error) {
	layout := host.Layout()
	if layout == nil || !host.Fitter() {
		return nil, &ConfigurationError{Layout: layout == nil, Fitter: !host.Fitter()}
	}

	r := &Recycler[T]{
		host:      host,
		prototype: prototype,
		onCreated: onCreated,
		onBind:    onBind,
	}
	if err := r.resolve(); err != nil {
		return nil, err
	}
	r.unsubscribe = host.Subscribe(r.onScroll)
	return r, nil
}

// resolve re-runs the layout resolver and rebuilds the pool when the
// resolved size no longer matches it.
func (r *Recycler[T]) resolve() error {
	res, err := Resolve(r.host.Layout(), r.host.Viewport(), r.prototype.Size(), r.host.Horizontal())
	if err != nil {
		return err
	}
	r.res = res
	if r.pool.Len() != res.PoolSize {
		r.pool.Build(res.PoolSize, r.prototype, r.host, r.onCreated)
	}
	return nil
}

// SetItemsCount sets the logical item count, lays the pool out again from
// the top, resizes the content and runs a forced pass. Negative counts are
// treated as zero.
func (r *Recycler[T]) SetItemsCount(count int) error {
	if r.busy {
		slog.Warn("Ignoring item count change from inside a recycle pass", "count", count)
		return nil
	}
	if err := r.resolve(); err != nil {
		return err
	}

	r.count = max(0, count)
	r.host.SetNormalizedPosition(r.host.ContentPivot())

	r.pool.Activate(0)
	r.host.SetAutoLayout(true)
	r.pool.Activate(r.count)
	r.host.ForceLayout()
	r.host.SetAutoLayout(false)

	r.host.SetContentSize(ContentSize(r.host.Layout(), r.res, r.count, r.host.Horizontal()))

	slog.Debug("Set recycle item count", "count", r.count, "pool", r.pool.Len())
	r.UpdateItems(true)
	return nil
}

func (r *Recycler[T]) onScroll(Vec2) {
	r.UpdateItems(false)
}

// UpdateItems moves every active instance that drifted a whole band or more
// from the viewport back across it, re-binding it to the logical index it
// now stands for. A forced pass binds every active instance even if nothing
// moved.
func (r *Recycler[T]) UpdateItems(forced bool) {
	if r.busy {
		slog.Warn("Ignoring re-entrant recycle pass")
		return
	}
	r.busy = true
	defer func() { r.busy = false }()

	horizontal := r.host.Horizontal()
	offset := r.host.ContentOffset()
	band := r.res.Band
	n := r.pool.Len()

	for i := range n {
		inst := r.pool.items[i]
		// Inactive instances are always a suffix of the pool.
		if !inst.Active() {
			return
		}

		prev := r.pool.indices[i]
		steps := wrapSteps(offset.Add(inst.Position()), band, horizontal)
		if !forced && steps == 0 {
			continue
		}

		steps = r.clampSteps(prev, steps)
		next := prev - steps*n
		if !forced && next == prev {
			continue
		}

		pos := inst.Position()
		shift := float64(steps) * band
		if horizontal {
			pos.X -= shift
		} else {
			pos.Y += shift
		}
		inst.SetPosition(pos)
		r.pool.indices[i] = next

		if r.onBind != nil {
			r.onBind(inst, next)
		}
	}
}

// clampSteps adjusts steps so that index - steps*PoolSize lands inside
// [0, count), wrapping an instance pushed past either end of the list back
// by whole bands.
func (r *Recycler[T]) clampSteps(index, steps int) int {
	n := r.pool.Len()
	index -= steps * n
	switch {
	case index < 0:
		return steps - ceilDiv(-index, n)
	case index >= r.count:
		return steps + ceilDiv(index-r.count+1, n)
	}
	return steps
}

// Unload detaches from the host's scroll notifications and destroys every
// instance. It may be called any number of times.
func (r *Recycler[T]) Unload() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.pool.Unload(r.host)
}

func (r *Recycler[T]) Resolution() Resolution {
	return r.res
}

func (r *Recycler[T]) ItemsCount() int {
	return r.count
}

// Pool exposes the instance pool for inspection. Callers must not mutate
// instance state through it.
func (r *Recycler[T]) Pool() *Pool[T] {
	return &r.pool
}

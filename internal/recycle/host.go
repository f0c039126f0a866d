package recycle

// Instance is the capability a host widget needs to be recycled. The engine
// never renders an instance; it only toggles it, moves it and hands it to the
// bind callback.
type Instance interface {
	Active() bool
	SetActive(bool)
	// Position is the pivot (centre) of the instance, local to the content.
	Position() Vec2
	SetPosition(Vec2)
	// Size is the natural size of the instance.
	Size() Vec2
}

// Factory creates and releases instances under the content container.
type Factory[T Instance] interface {
	// Contains reports whether inst is already parented under the content.
	Contains(inst T) bool
	// Instantiate clones prototype and parents the clone under the content.
	Instantiate(prototype T) T
	Destroy(inst T)
}

// Host is the rendering and layout collaborator that owns the viewport and
// the content container.
type Host[T Instance] interface {
	Factory[T]

	// Horizontal reports the scroll axis.
	Horizontal() bool
	Viewport() Vec2
	// ContentOffset is the content's top-left corner relative to the
	// viewport centre.
	ContentOffset() Vec2
	SetContentSize(Vec2)
	ContentPivot() Vec2
	SetNormalizedPosition(Vec2)

	// Layout returns the content's layout descriptor, or nil if it has none.
	Layout() *Layout
	// Fitter reports whether the content has a size-fitting strategy.
	Fitter() bool
	// SetAutoLayout enables or disables the layout and fitter behaviours.
	SetAutoLayout(bool)
	// ForceLayout runs a synchronous layout pass with the enabled behaviours.
	ForceLayout()

	// Subscribe registers fn for scroll position changes and returns the
	// function that removes it.
	Subscribe(fn func(normalized Vec2)) (unsubscribe func())
}

// Package recycle implements a recycling scroll engine: a fixed pool of
// physical instances is repositioned and re-bound as the viewport scrolls, so
// a list of any logical length only ever materializes enough widgets to cover
// the viewport plus one entry of buffer.
//
// Geometry uses a y-up frame. Positions handed to the engine by a Host are
// measured from the viewport centre; instance positions are local to the
// content container, whose origin is its top-left corner. Moving down the
// screen therefore means a smaller Y.
//
// The engine is single threaded. Every pass runs synchronously inside the
// scroll notification or SetItemsCount call that triggered it.
package recycle

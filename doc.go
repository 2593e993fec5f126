// Package forms lays out a tree of rectangular controls from declared
// constraints.
//
// A control's position and size are never set directly. Relationships are
// declared between controls (align one edge to another, fix a coordinate,
// share space, fit to content, center) and a Form solves them into concrete
// rectangles on its surface. The solver lives in internal/layout; this
// package re-exports its types and adds the hosting pieces around it:
// surfaces, self-sizing controls, animators and the frame loop.
//
// A Form and everything it owns must be used from one goroutine. Work from
// other goroutines is handed over with Form.Queue.
package forms

// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package forms

import "github.com/grindlemire/go-forms/internal/layout"

// Axis selects the horizontal or vertical coordinate system.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// CoordKind is one of the five quantities derivable on an axis.
type CoordKind = layout.CoordKind

const (
	Start         = layout.Start
	Size          = layout.Size
	End           = layout.End
	StartPlusSize = layout.StartPlusSize
	EndPlusSize   = layout.EndPlusSize
)

// Coord identifies a coordinate: an axis and a kind.
type Coord = layout.Coord

// The ten coordinates of a control.
var (
	X   = layout.X
	Y   = layout.Y
	W   = layout.W
	H   = layout.H
	X2  = layout.X2
	Y2  = layout.Y2
	XW  = layout.XW
	YH  = layout.YH
	X2W = layout.X2W
	Y2H = layout.Y2H
)

// NodeID is a handle to a control.
type NodeID = layout.NodeID

// ConstraintID is a handle to a constraint.
type ConstraintID = layout.ConstraintID

// ConstraintKind identifies a constraint variant.
type ConstraintKind = layout.ConstraintKind

const (
	KindAlign   = layout.KindAlign
	KindStatic  = layout.KindStatic
	KindFill    = layout.KindFill
	KindContent = layout.KindContent
	KindCenter  = layout.KindCenter
)

// Tree is the control and constraint arena a Form solves.
type Tree = layout.Tree

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Pin fixes one coordinate to a value when placing a control.
type Pin = layout.Pin

// FillGroup holds the constraints declared by FillParent.
type FillGroup = layout.FillGroup

// Description is the overlay description of a constraint.
type Description = layout.Description

// Segment is one measured distance in a Description.
type Segment = layout.Segment

// SelfConstrainer is implemented by controls that size themselves.
type SelfConstrainer = layout.SelfConstrainer

// SelfConstrainFunc adapts a function to SelfConstrainer.
type SelfConstrainFunc = layout.SelfConstrainFunc

// Seed gives a SelfConstrainer access to its own coordinates.
type Seed = layout.Seed

// Host supplies default geometry to unconstrained controls.
type Host = layout.Host

// Errors returned while declaring constraints or laying out.
var (
	ErrNotAttached      = layout.ErrNotAttached
	ErrParentMismatch   = layout.ErrParentMismatch
	ErrInvalidFill      = layout.ErrInvalidFill
	ErrOverspecified    = layout.ErrOverspecified
	ErrAlreadySpecified = layout.ErrAlreadySpecified
	ErrUnsatisfiable    = layout.ErrUnsatisfiable
	ErrNoConvergence    = layout.ErrNoConvergence
	ErrIncomplete       = layout.ErrIncomplete
	ErrStillReferenced  = layout.ErrStillReferenced
)

// UnsatisfiableError lists the constraints a stalled pass left pending.
type UnsatisfiableError = layout.UnsatisfiableError

// IncompleteError names a control left with unresolved coordinates.
type IncompleteError = layout.IncompleteError

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// At pins coordinate c to v.
func At(c Coord, v float64) Pin {
	return Pin{Coord: c, Value: v}
}

// NodeOption configures a control when it is created.
type NodeOption = layout.NodeOption

// Named sets a control's diagnostic name.
func Named(name string) NodeOption {
	return layout.Named(name)
}

// WithSelfConstrainer installs a control's self-sizing hook.
func WithSelfConstrainer(sc SelfConstrainer) NodeOption {
	return layout.WithSelfConstrainer(sc)
}

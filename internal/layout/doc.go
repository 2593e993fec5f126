// Package layout implements a constraint-based layout engine for a tree of
// rectangular controls.
//
// Controls never set their own position or size. Instead, constraints
// (Align, Static, Fill, Fit, Center) declare relationships between sibling
// controls and their parent, and [Tree.Layout] derives every control's ten
// coordinates: Start, Size, End, StartPlusSize and EndPlusSize on each axis.
//
// Controls and constraints live in an arena inside [Tree] and are addressed
// by [NodeID] and [ConstraintID] handles. Types are re-exported through the
// root forms package for public consumption.
package layout

package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Structural errors are raised when a constraint is declared and are never recovered.
var (
	ErrMismatched     = errors.New("mismatched controls and coordinates")
	ErrNotAttached    = errors.New("control must be attached to a parent before constraining")
	ErrParentMismatch = errors.New("all controls in the same constraint must share the same parent")
	ErrInvalidFill    = errors.New("invalid fill constraint")
	ErrInvalidCoord   = errors.New("invalid coordinate")
)

// Errors raised while a layout pass is running.
var (
	ErrOverspecified    = errors.New("overspecified coordinate")
	ErrAlreadySpecified = errors.New("aligning two coordinates that are already specified")
	ErrUnsatisfiable    = errors.New("unable to apply remaining constraints")
	ErrNoConvergence    = errors.New("unable to solve constraints")
	ErrIncomplete       = errors.New("control was not fully specified after layout")
)

// Tree consistency errors.
var (
	ErrStillReferenced   = errors.New("control still referenced by constraints")
	ErrOrphanConstraints = errors.New("constraints left after removing all controls")
	ErrUnknownNode       = errors.New("unknown control")
	ErrUnknownConstraint = errors.New("unknown constraint")
	ErrWrongKind         = errors.New("wrong constraint kind")
	ErrRootRemoval       = errors.New("cannot remove the root control")
	ErrAlreadyAttached   = errors.New("control already has a parent")
)

// UnsatisfiableError reports the constraints left pending when a resolve
// scan made no progress.
type UnsatisfiableError struct {
	Pending []ConstraintID
	Details []string
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("%v: %d pending [%s]", ErrUnsatisfiable, len(e.Pending), strings.Join(e.Details, "; "))
}

func (e *UnsatisfiableError) Unwrap() error {
	return ErrUnsatisfiable
}

// IncompleteError reports a control left with unresolved coordinates.
type IncompleteError struct {
	Node    NodeID
	Name    string
	Missing []Coord
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = c.String()
	}
	label := fmt.Sprintf("#%d", e.Node)
	if e.Name != "" {
		label = fmt.Sprintf("%q", e.Name)
	}
	return fmt.Sprintf("%v: control %s missing %s", ErrIncomplete, label, strings.Join(names, ","))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

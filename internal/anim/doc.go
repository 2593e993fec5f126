// Package anim animates Static constraints over time.
//
// An Animator is ticked by its owner once per frame. Each tick writes the
// eased, rounded value into the constraint, which requests a re-layout when
// the value changed. Animators are not safe for concurrent use; Done may be
// waited on from any goroutine.
package anim

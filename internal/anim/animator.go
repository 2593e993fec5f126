package anim

import (
	"math"
	"sync"
	"time"

	"github.com/grindlemire/go-forms/internal/layout"
)

// DefaultDuration is used when no duration is given.
const DefaultDuration = 500 * time.Millisecond

// Target is the tree owning the animated constraint.
type Target interface {
	SetStatic(id layout.ConstraintID, v float64) error
}

// Animator drives a Static constraint from min to max over a duration.
// It is advanced by the owner's frame tick; the first Apply fixes the start time.
type Animator struct {
	target   Target
	id       layout.ConstraintID
	min, max float64
	duration time.Duration
	easing   Easing
	loop     bool

	start    time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// Option configures an Animator.
type Option func(*Animator)

// WithDuration sets how long one run takes. Non-positive durations use DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.duration = d
		}
	}
}

// WithEasing sets the easing curve. Nil keeps Linear.
func WithEasing(e Easing) Option {
	return func(a *Animator) {
		if e != nil {
			a.easing = e
		}
	}
}

// Looping restarts the animation from min whenever it reaches max.
func Looping() Option {
	return func(a *Animator) {
		a.loop = true
	}
}

// New returns an animator moving the Static constraint id from one value to another.
func New(target Target, id layout.ConstraintID, from, to float64, opts ...Option) *Animator {
	a := &Animator{
		target:   target,
		id:       id,
		min:      from,
		max:      to,
		duration: DefaultDuration,
		easing:   Linear,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply moves the constraint to its value at now. It returns true once the
// animation has finished and should no longer be ticked.
func (a *Animator) Apply(now time.Time) (bool, error) {
	if a.Stopped() {
		return true, nil
	}
	if a.start.IsZero() {
		a.start = now
	}
	elapsed := now.Sub(a.start)
	t := min(1, float64(elapsed)/float64(a.duration))
	if err := a.target.SetStatic(a.id, a.Value(t)); err != nil {
		a.Stop()
		return true, err
	}
	if elapsed < a.duration {
		return false, nil
	}
	if a.loop {
		a.start = time.Time{}
		return false, nil
	}
	a.Stop()
	return true, nil
}

// Value returns the rounded constraint value at linear progress t.
func (a *Animator) Value(t float64) float64 {
	return math.Round(a.min + (a.max-a.min)*a.easing(t))
}

// Stop ends the animation and releases anyone waiting on Done.
func (a *Animator) Stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

// Stopped reports whether the animation has ended.
func (a *Animator) Stopped() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Done is closed when the animation finishes or is stopped.
func (a *Animator) Done() <-chan struct{} {
	return a.done
}

// Constraint returns the animated constraint.
func (a *Animator) Constraint() layout.ConstraintID {
	return a.id
}

package forms

import (
	"context"
	"time"
)

// Run ticks frames until ctx is done or Stop is called, running queued
// updates between frames. It returns nil when stopped and the first frame
// error otherwise. Animators still running when Run returns are stopped.
func (f *Form) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.frameDuration)
	defer ticker.Stop()
	defer f.stopAnimators()

	// Initial frame
	if err := f.Frame(time.Now()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-f.stopCh:
			return nil
		case fn := <-f.updates:
			fn()
		case now := <-ticker.C:
			if err := f.Frame(now); err != nil {
				return err
			}
		}
	}
}

// Stop signals Run to return. Safe to call from any goroutine, and more
// than once.
func (f *Form) Stop() {
	f.stopOnce.Do(func() {
		close(f.stopCh)
	})
}

func (f *Form) stopAnimators() {
	for _, a := range f.animators {
		a.Stop()
	}
	f.animators = nil
}

// Queue hands fn to the goroutine running Run. Safe to call from any
// goroutine. Returns false if the form is stopping or the queue is full.
func (f *Form) Queue(fn func()) bool {
	select {
	case <-f.stopCh:
		return false
	default:
	}
	select {
	case f.updates <- fn:
		return true
	default:
		return false
	}
}

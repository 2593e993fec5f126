package forms

// Relayout requests a layout pass on the next frame. Declaring, removing or
// changing a constraint already does this.
func (f *Form) Relayout() {
	f.tree.MarkDirty()
}

// NeedsLayout reports whether a layout pass is pending.
func (f *Form) NeedsLayout() bool {
	return f.tree.NeedsLayout()
}

// Repaint requests a paint on the next frame without a layout pass.
func (f *Form) Repaint() {
	f.repaint.Store(true)
}

// checkAndClearRepaint returns true if a repaint was requested and clears the flag.
func (f *Form) checkAndClearRepaint() bool {
	return f.repaint.Swap(false)
}

package boxtree

// MarkDirty queues id for re-measurement on the next pass and flags the
// host as needing layout. Called by State bindings created with Drive.
func (h *Host) MarkDirty(id NodeID) {
	h.tree.MarkDirty(id)
	h.dirty.Store(true)
}

// NeedsLayout reports whether MarkDirty was called since the last Layout.
func (h *Host) NeedsLayout() bool {
	return h.dirty.Load()
}

// checkAndClearDirty returns true if dirty and clears the flag.
func (h *Host) checkAndClearDirty() bool {
	return h.dirty.Swap(false)
}

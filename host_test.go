package boxtree

import "testing"

func TestHost_StateDrivesLayout(t *testing.T) {
	h := newTestHost()
	tree := h.Tree()

	row := tree.NewNode(&Flex{})
	box := &Box{Size: Sz(100, 20)}
	boxID := tree.NewNode(box)
	other := tree.NewNode(&Box{Size: Sz(50, 20)})
	tree.SetRoot(row)
	tree.AppendChild(row, boxID)
	tree.AppendChild(row, other)

	window := MaxSize(Sz(500, 500))
	h.Layout(window)

	width := NewState(h, box.Size.Width)
	width.Bind(func(w float32) { box.Size.Width = w })
	width.Drive(boxID)

	if h.NeedsLayout() {
		t.Fatal("host should be clean after Layout")
	}
	width.Set(140)
	if !h.NeedsLayout() {
		t.Fatal("Set should flag the host")
	}

	stats := h.Layout(window)
	if h.NeedsLayout() {
		t.Error("Layout should clear the flag")
	}
	if stats.Performed != 2 {
		t.Errorf("Performed = %d, want 2 (box and row)", stats.Performed)
	}

	r, _ := tree.Store().LayoutBoxRect(other)
	if r.Origin != Pt(140, 0) {
		t.Errorf("sibling at %v, want (140,0)", r.Origin)
	}
	if size, _ := tree.Store().LayoutBoxSize(row); size != Sz(190, 20) {
		t.Errorf("row size = %v, want 190x20", size)
	}
}

func TestHost_BatchMarksOnce(t *testing.T) {
	h := newTestHost()
	tree := h.Tree()
	root := tree.NewNode(&Box{Size: Sz(10, 10)})
	tree.SetRoot(root)
	h.Layout(Unlimited())

	w := NewState(h, float32(0))
	hgt := NewState(h, float32(0))
	var marks int
	w.Bind(func(float32) { marks++ })
	w.Drive(root)
	hgt.Drive(root)

	h.Batch(func() {
		w.Set(1)
		w.Set(2)
		hgt.Set(3)
		if h.NeedsLayout() {
			t.Error("bindings must not run inside a batch")
		}
	})

	if marks != 1 {
		t.Errorf("binding ran %d times, want 1", marks)
	}
	if !tree.IsDirty(root) {
		t.Error("root should be dirty after the batch")
	}
}

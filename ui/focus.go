package ui

// SetFocusedNode clears focus on every widget except the one with the given
// preorder index, then focuses that one. An index outside the tree only
// clears.
func SetFocusedNode(root Widget, index int) {
	var target Widget
	Walk(root, func(i int, widget Widget) bool {
		if i == index {
			target = widget
		} else {
			widget.SetFocused(false)
		}
		return true
	})
	if target != nil {
		target.SetFocused(true)
	}
}

// FocusState tracks the single focused widget by preorder index.
type FocusState struct {
	index   int
	focused bool
}

func (f *FocusState) Index() (int, bool) {
	return f.index, f.focused
}

func (f *FocusState) Set(root Widget, index int) {
	SetFocusedNode(root, index)
	f.index, f.focused = index, index >= 0 && index < Count(root)
}

func (f *FocusState) Clear(root Widget) {
	SetFocusedNode(root, -1)
	f.index, f.focused = 0, false
}

package ui

// Walk visits root and its descendants in preorder, passing each widget's
// preorder index. Returning false from fn stops the walk.
func Walk(root Widget, fn func(index int, widget Widget) bool) {
	index := 0
	walk(root, &index, fn)
}

func walk(widget Widget, index *int, fn func(int, Widget) bool) bool {
	if !fn(*index, widget) {
		return false
	}
	*index++
	for _, child := range widget.Children() {
		if !walk(child, index, fn) {
			return false
		}
	}
	return true
}

func Count(root Widget) int {
	count := 0
	Walk(root, func(int, Widget) bool {
		count++
		return true
	})
	return count
}

// Find returns the widget with the given preorder index.
func Find(root Widget, index int) (Widget, bool) {
	if index < 0 {
		return nil, false
	}
	var found Widget
	Walk(root, func(i int, widget Widget) bool {
		if i == index {
			found = widget
			return false
		}
		return true
	})
	return found, found != nil
}

// FindByID returns the first widget in preorder whose ID is id, with its
// current preorder index.
func FindByID(root Widget, id string) (Widget, int, bool) {
	var found Widget
	foundIndex := -1
	Walk(root, func(i int, widget Widget) bool {
		if widget.ID() == id {
			found, foundIndex = widget, i
			return false
		}
		return true
	})
	return found, foundIndex, found != nil
}

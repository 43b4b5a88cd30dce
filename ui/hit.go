package ui

// IndexAt returns the deepest node containing (x, y). Children are searched
// before their parent; among overlapping siblings the first one wins.
func (t *Tree) IndexAt(x, y float64) (int, bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	return t.indexAt(0, x, y)
}

func (t *Tree) indexAt(index int, x, y float64) (int, bool) {
	node := t.nodes[index]
	if !node.rect.Contains(x, y) {
		return 0, false
	}
	for _, child := range node.children {
		if found, ok := t.indexAt(child, x, y); ok {
			return found, true
		}
	}
	return index, true
}

// Hit returns every node containing (x, y), root first.
func (t *Tree) Hit(x, y float64) []int {
	var result []int
	if len(t.nodes) > 0 {
		result = t.hit(0, x, y, result)
	}
	return result
}

func (t *Tree) hit(index int, x, y float64, result []int) []int {
	node := t.nodes[index]
	if !node.rect.Contains(x, y) {
		return result
	}
	result = append(result, index)
	for _, child := range node.children {
		result = t.hit(child, x, y, result)
	}
	return result
}

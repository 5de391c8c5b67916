package state

// SelectableList is an ordered collection with at most one selected index.
// Cursor movement wraps around; an empty list never has a selection.
type SelectableList[T any] struct {
	items    []T
	selected int
}

// NewSelectableList wraps items with no selection.
func NewSelectableList[T any](items []T) *SelectableList[T] {
	return &SelectableList[T]{items: items, selected: -1}
}

func (l *SelectableList[T]) Items() []T {
	return l.items
}

func (l *SelectableList[T]) Len() int {
	return len(l.items)
}

// Selected returns the active index, if any.
func (l *SelectableList[T]) Selected() (int, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return -1, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the cursor, if any.
func (l *SelectableList[T]) SelectedItem() (T, bool) {
	var zero T
	idx, ok := l.Selected()
	if !ok {
		return zero, false
	}
	return l.items[idx], true
}

// Select moves the cursor to idx. Out-of-range indices clear the selection.
func (l *SelectableList[T]) Select(idx int) bool {
	if idx < 0 || idx >= len(l.items) {
		l.selected = -1
		return false
	}
	l.selected = idx
	return true
}

func (l *SelectableList[T]) ClearSelection() {
	l.selected = -1
}

// Advance moves to the next item, wrapping to the first.
func (l *SelectableList[T]) Advance() {
	if len(l.items) == 0 {
		l.selected = -1
		return
	}
	idx, ok := l.Selected()
	if !ok {
		l.selected = 0
		return
	}
	l.selected = (idx + 1) % len(l.items)
}

// Retreat moves to the previous item, wrapping to the last.
func (l *SelectableList[T]) Retreat() {
	if len(l.items) == 0 {
		l.selected = -1
		return
	}
	idx, ok := l.Selected()
	switch {
	case !ok:
		l.selected = 0
	case idx == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected = idx - 1
	}
}

// ReplaceItems swaps the backing slice and drops the selection; callers
// re-establish it for the new contents.
func (l *SelectableList[T]) ReplaceItems(items []T) {
	l.items = items
	l.selected = -1
}

// IndexFunc returns the first index whose item satisfies match, or -1.
func (l *SelectableList[T]) IndexFunc(match func(T) bool) int {
	for i, item := range l.items {
		if match(item) {
			return i
		}
	}
	return -1
}

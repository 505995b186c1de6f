package domain

// WatchedList tracks mutations to a collection against an original
// snapshot, so a repository can persist only the delta: the items added
// since construction and the original items removed since. Items are matched
// by a caller-supplied compare function, not by Go equality.
//
// Re-adding an item that was removed cancels the removal; removing an item
// that was only just added cancels the addition. Neither appears in the
// delta afterwards.
type WatchedList[T any] struct {
	compare  func(a, b T) bool
	items    []T
	original []T
	added    []T
	removed  []T
}

// NewWatchedList creates a watched list over the initial items, which form
// the original snapshot.
func NewWatchedList[T any](compare func(a, b T) bool, initial ...T) *WatchedList[T] {
	l := &WatchedList[T]{
		compare:  compare,
		items:    make([]T, len(initial)),
		original: make([]T, len(initial)),
	}
	copy(l.items, initial)
	copy(l.original, initial)
	return l
}

// Items returns the current items.
func (l *WatchedList[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// OriginalItems returns the snapshot taken at construction.
func (l *WatchedList[T]) OriginalItems() []T {
	return append([]T(nil), l.original...)
}

// AddedItems returns the items added since construction and not removed
// again.
func (l *WatchedList[T]) AddedItems() []T {
	return append([]T(nil), l.added...)
}

// RemovedItems returns the original items removed since construction and not
// re-added.
func (l *WatchedList[T]) RemovedItems() []T {
	return append([]T(nil), l.removed...)
}

// Exists reports whether the item is currently in the list.
func (l *WatchedList[T]) Exists(item T) bool {
	return l.contains(l.items, item) || l.contains(l.added, item)
}

// Add puts the item into the list. Adding an item already present is a
// no-op; adding back a removed original cancels the removal instead of
// counting as an addition.
func (l *WatchedList[T]) Add(item T) {
	if l.contains(l.removed, item) {
		l.removed = l.without(l.removed, item)
	}
	if !l.contains(l.added, item) && !l.contains(l.original, item) {
		l.added = append(l.added, item)
	}
	if !l.contains(l.items, item) {
		l.items = append(l.items, item)
	}
}

// Remove takes the item out of the list. Removing an item added after
// construction cancels the addition; removing an original item records it in
// the removed delta.
func (l *WatchedList[T]) Remove(item T) {
	if l.contains(l.items, item) {
		l.items = l.without(l.items, item)
	}
	if l.contains(l.added, item) {
		l.added = l.without(l.added, item)
		return
	}
	if l.contains(l.original, item) && !l.contains(l.removed, item) {
		l.removed = append(l.removed, item)
	}
}

func (l *WatchedList[T]) contains(items []T, item T) bool {
	for _, cur := range items {
		if l.compare(cur, item) {
			return true
		}
	}
	return false
}

func (l *WatchedList[T]) without(items []T, item T) []T {
	out := items[:0]
	for _, cur := range items {
		if !l.compare(cur, item) {
			out = append(out, cur)
		}
	}
	return out
}

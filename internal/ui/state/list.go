package state

// List tracks a cursor over an ordered sequence of display entries.
// The cursor is -1 while the list is empty; otherwise it always points
// at a valid index. Insertion order is display order.
type List struct {
	items  []string
	cursor int
}

// NewList constructs a List over the given entries.
func NewList(items ...string) *List {
	l := &List{}
	l.Replace(items)
	return l
}

// MoveUp moves the cursor towards the first entry, saturating at 0.
// It reports whether the cursor changed.
func (l *List) MoveUp() bool {
	if len(l.items) == 0 || l.cursor <= 0 {
		return false
	}
	l.cursor--
	return true
}

// MoveDown moves the cursor towards the last entry, wrapping back to 0
// past the end. It reports whether the cursor changed.
func (l *List) MoveDown() bool {
	n := len(l.items)
	if n == 0 {
		return false
	}
	if l.cursor < n-1 {
		l.cursor++
	} else {
		l.cursor = 0
	}
	return n > 1
}

// Select returns the entry under the cursor. The second return value is
// false when the list is empty.
func (l *List) Select() (string, bool) {
	if len(l.items) == 0 || l.cursor < 0 || l.cursor >= len(l.items) {
		return "", false
	}
	return l.items[l.cursor], true
}

// Replace installs a new sequence of entries and resets the cursor to
// the first entry, or -1 when the sequence is empty.
func (l *List) Replace(items []string) {
	l.items = append([]string(nil), items...)
	if len(l.items) == 0 {
		l.cursor = -1
		return
	}
	l.cursor = 0
}

// Cursor returns the current cursor index, -1 when the list is empty.
func (l *List) Cursor() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.cursor
}

// Items returns a copy of the entries in display order.
func (l *List) Items() []string {
	return append([]string(nil), l.items...)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.items)
}

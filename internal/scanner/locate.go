package scanner

import (
	"bytes"
	"sort"
)

// locator resolves byte offsets and substring occurrences in a source buffer
// to 1-based line/column positions. The HTML parser does not expose node
// positions, so directive locations are recovered by searching for the raw
// attribute text in document order; the cursor only moves forward, which
// keeps repeated attribute values from resolving to the same occurrence.
type locator struct {
	content  []byte
	newlines []int // byte offsets of '\n'
	cursor   int
	baseLine int
}

func newLocator(content []byte, baseLine int) *locator {
	var newlines []int
	for i, b := range content {
		if b == '\n' {
			newlines = append(newlines, i)
		}
	}
	return &locator{content: content, newlines: newlines, baseLine: baseLine}
}

// position converts a byte offset into line and column.
func (l *locator) position(offset int) (line, col int) {
	idx := sort.SearchInts(l.newlines, offset)
	line = l.baseLine + idx
	if idx == 0 {
		col = offset + 1
	} else {
		col = offset - l.newlines[idx-1]
	}
	return line, col
}

// find locates the next occurrence of needle at or after the cursor and
// advances the cursor past it. Returns (0, 0) when the text cannot be found,
// which callers treat as "location unknown" rather than an error.
func (l *locator) find(needle string) (line, col int) {
	if needle == "" || l.cursor >= len(l.content) {
		return 0, 0
	}
	idx := bytes.Index(l.content[l.cursor:], []byte(needle))
	if idx < 0 {
		// Retry from the start: attribute serialization order can
		// differ from raw document order for siblings.
		idx = bytes.Index(l.content, []byte(needle))
		if idx < 0 {
			return 0, 0
		}
		line, col = l.position(idx)
		return line, col
	}
	abs := l.cursor + idx
	l.cursor = abs + len(needle)
	return l.position(abs)
}

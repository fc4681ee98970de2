// Package editor implements a single-line, grapheme-aware text buffer with
// readline-style motion and editing.
package editor

import "strings"

// Buffer is a line of text and a cursor. The cursor is a byte offset into
// Text that always sits on a grapheme cluster boundary. Every method is a
// no-op when it would move past either edge.
type Buffer struct {
	text   string
	cursor int
}

// New returns a buffer holding text with the cursor at the end.
func New(text string) *Buffer {
	return &Buffer{text: text, cursor: len(text)}
}

// Text returns the buffer contents.
func (b *Buffer) Text() string { return b.text }

// Cursor returns the cursor as a byte offset.
func (b *Buffer) Cursor() int { return b.cursor }

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool { return b.text == "" }

// Reset clears the text and moves the cursor home.
func (b *Buffer) Reset() {
	b.text = ""
	b.cursor = 0
}

// Update replaces the text and cursor. The cursor is clamped to the text and
// moved forward to a cluster boundary.
func (b *Buffer) Update(text string, cursor int) {
	b.text = text
	b.cursor = snap(text, cursor)
}

// Clusters returns the grapheme clusters of the text.
func (b *Buffer) Clusters() []string {
	bounds := boundaries(b.text)
	out := make([]string, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		out = append(out, b.text[bounds[i]:bounds[i+1]])
	}
	return out
}

// DisplayColumn is the terminal width of everything before the cursor.
func (b *Buffer) DisplayColumn() int {
	col := 0
	bounds := boundaries(b.text)
	for i := 0; i+1 < len(bounds) && bounds[i] < b.cursor; i++ {
		col += ClusterWidth(b.text[bounds[i]:bounds[i+1]])
	}
	return col
}

// MoveForward moves the cursor n clusters right.
func (b *Buffer) MoveForward(n int) {
	if n < 1 {
		return
	}
	bounds := boundaries(b.text)
	i := clusterAt(bounds, b.cursor) + n
	if i >= len(bounds) {
		i = len(bounds) - 1
	}
	b.cursor = bounds[i]
}

// MoveBackward moves the cursor n clusters left.
func (b *Buffer) MoveBackward(n int) {
	if n < 1 {
		return
	}
	bounds := boundaries(b.text)
	i := clusterAt(bounds, b.cursor) - n
	if i < 0 {
		i = 0
	}
	b.cursor = bounds[i]
}

// MoveHome moves the cursor to the start of the line.
func (b *Buffer) MoveHome() { b.cursor = 0 }

// MoveEnd moves the cursor to the end of the line.
func (b *Buffer) MoveEnd() { b.cursor = len(b.text) }

// Insert inserts r n times at the cursor and moves past it.
func (b *Buffer) Insert(r rune, n int) {
	if n < 1 {
		return
	}
	b.InsertString(strings.Repeat(string(r), n))
}

// InsertString inserts s at the cursor and moves past it.
func (b *Buffer) InsertString(s string) {
	if s == "" {
		return
	}
	text := b.text[:b.cursor] + s + b.text[b.cursor:]
	b.Update(text, b.cursor+len(s))
}

// Delete removes n clusters starting at the cursor.
func (b *Buffer) Delete(n int) {
	if n < 1 {
		return
	}
	bounds := boundaries(b.text)
	end := clusterAt(bounds, b.cursor) + n
	if end >= len(bounds) {
		end = len(bounds) - 1
	}
	b.deleteRange(b.cursor, bounds[end])
}

// Backspace removes n clusters before the cursor.
func (b *Buffer) Backspace(n int) {
	if n < 1 {
		return
	}
	bounds := boundaries(b.text)
	start := clusterAt(bounds, b.cursor) - n
	if start < 0 {
		start = 0
	}
	b.deleteRange(bounds[start], b.cursor)
}

// KillLine deletes from the cursor to the end of the line.
func (b *Buffer) KillLine() {
	b.text = b.text[:b.cursor]
}

// DiscardLine deletes from the start of the line to the cursor.
func (b *Buffer) DiscardLine() {
	b.deleteRange(0, b.cursor)
}

// TransposeChars swaps the cluster before the cursor with the one under it
// and moves forward. At the end of the line it swaps the last two clusters.
func (b *Buffer) TransposeChars() {
	clusters := b.Clusters()
	if len(clusters) < 2 || b.cursor == 0 {
		return
	}

	i := clusterAt(boundaries(b.text), b.cursor)
	if i == len(clusters) {
		i--
	}
	clusters[i-1], clusters[i] = clusters[i], clusters[i-1]

	cursor := 0
	for _, c := range clusters[:i+1] {
		cursor += len(c)
	}
	b.Update(strings.Join(clusters, ""), cursor)
}

func (b *Buffer) deleteRange(from, to int) {
	if from >= to {
		return
	}
	b.Update(b.text[:from]+b.text[to:], from)
}

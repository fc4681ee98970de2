package editor

// Words are runs of non-whitespace clusters.

// wordEnd returns the boundary index reached by skipping whitespace and
// then non-whitespace n times, moving right from boundary i.
func (b *Buffer) wordEnd(bounds []int, i, n int) int {
	last := len(bounds) - 1
	for ; n > 0 && i < last; n-- {
		for i < last && isSpace(b.text[bounds[i]:bounds[i+1]]) {
			i++
		}
		for i < last && !isSpace(b.text[bounds[i]:bounds[i+1]]) {
			i++
		}
	}
	return i
}

// wordStart is wordEnd moving left.
func (b *Buffer) wordStart(bounds []int, i, n int) int {
	for ; n > 0 && i > 0; n-- {
		for i > 0 && isSpace(b.text[bounds[i-1]:bounds[i]]) {
			i--
		}
		for i > 0 && !isSpace(b.text[bounds[i-1]:bounds[i]]) {
			i--
		}
	}
	return i
}

// MoveWordForward moves to the end of the nth word after the cursor.
func (b *Buffer) MoveWordForward(n int) {
	bounds := boundaries(b.text)
	b.cursor = bounds[b.wordEnd(bounds, clusterAt(bounds, b.cursor), n)]
}

// MoveWordBackward moves to the start of the nth word before the cursor.
func (b *Buffer) MoveWordBackward(n int) {
	bounds := boundaries(b.text)
	b.cursor = bounds[b.wordStart(bounds, clusterAt(bounds, b.cursor), n)]
}

// DeletePrevWord deletes from the start of the nth word before the cursor
// up to the cursor.
func (b *Buffer) DeletePrevWord(n int) {
	bounds := boundaries(b.text)
	start := b.wordStart(bounds, clusterAt(bounds, b.cursor), n)
	b.deleteRange(bounds[start], b.cursor)
}

// TransposeWords drags the word before the cursor past the word after it and
// leaves the cursor after both. At the end of the line the last two words
// are swapped. Nothing happens unless two distinct words are found.
func (b *Buffer) TransposeWords(n int) {
	if n < 1 {
		return
	}
	bounds := boundaries(b.text)
	i := clusterAt(bounds, b.cursor)

	w2Start := b.wordStart(bounds, b.wordEnd(bounds, i, n), 1)
	w2End := b.wordEnd(bounds, w2Start, 1)
	w1Start := b.wordStart(bounds, w2Start, n)
	w1End := b.wordEnd(bounds, w1Start, 1)

	if w1Start == w2Start || w2Start < w1End {
		return
	}

	t := b.text
	first := t[bounds[w1Start]:bounds[w1End]]
	between := t[bounds[w1End]:bounds[w2Start]]
	second := t[bounds[w2Start]:bounds[w2End]]
	b.Update(t[:bounds[w1Start]]+second+between+first+t[bounds[w2End]:], bounds[w2End])
}

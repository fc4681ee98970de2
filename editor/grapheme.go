package editor

import (
	"sort"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// boundaries returns the byte offset of every grapheme cluster start in
// text, followed by len(text). The empty string has the single boundary 0.
func boundaries(text string) []int {
	out := make([]int, 0, len(text)+1)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, from)
	}
	return append(out, len(text))
}

// clusterAt returns the index of the boundary at or after offset.
func clusterAt(bounds []int, offset int) int {
	return sort.SearchInts(bounds, offset)
}

// snap moves offset forward to the nearest cluster boundary.
func snap(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(text) {
		return len(text)
	}
	bounds := boundaries(text)
	return bounds[clusterAt(bounds, offset)]
}

// ClusterWidth is the number of terminal cells a cluster occupies.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// isSpace reports whether all runes in cluster are Unicode whitespace.
func isSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

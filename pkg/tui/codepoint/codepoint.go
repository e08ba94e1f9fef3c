// ABOUTME: Lazy iteration over the Unicode scalar values and grapheme clusters of a string
// ABOUTME: Width sums cluster widths using uniseg segmentation and go-runewidth

// Package codepoint gives layout code a way to walk text by scalar value or
// by user-perceived character without decoding it into intermediate slices.
package codepoint

import (
	"iter"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sequence returns a lazy sequence of the scalar values in text.
// Each call to the returned iterator starts over from the beginning of
// text. Bytes that are not valid UTF-8 yield utf8.RuneError.
func Sequence(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range text {
			if !yield(r) {
				return
			}
		}
	}
}

// Count returns the number of scalar values Sequence would yield.
func Count(text string) int {
	return utf8.RuneCountInString(text)
}

// Graphemes returns a lazy sequence of the extended grapheme clusters in text.
func Graphemes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		state := -1
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

// Width returns the number of terminal cells text occupies. Each grapheme
// cluster is measured by its leading scalar value so combining marks and
// emoji modifiers add nothing. Escape sequences are not stripped.
func Width(text string) int {
	w := 0
	for cluster := range Graphemes(text) {
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}

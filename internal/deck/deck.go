// Package deck holds the two fixed emoji decks and the pure selection
// function that maps mixer values onto them.
package deck

import "math"

// Size is the shared length N of both decks.
const Size = 8

// Deck is a fixed, ordered run of emoji. Both decks share Size so a scratch
// index is valid on either.
type Deck [Size]string

var (
	A = Deck{"🎧", "🎚", "🎛", "🎵", "🎶", "📀", "💿", "🔊"}
	B = Deck{"🔥", "✨", "🌈", "⚡", "🌀", "💥", "🎇", "🚀"}
)

// Select maps the mixer values to a single emoji: scratch picks the index,
// crossfade picks the deck. Pure and total.
func Select(scratch, crossfade float64) string {
	return Pick(crossfade)[Index(scratch)]
}

// Pick returns the deck the crossfader currently points at.
func Pick(crossfade float64) Deck {
	if crossfade < 0.5 {
		return A
	}
	return B
}

// Index converts a scratch value to a deck index, clamped to [0, Size-1].
func Index(scratch float64) int {
	i := int(math.Round(scratch * (Size - 1)))
	if i < 0 {
		return 0
	}
	if i >= Size {
		return Size - 1
	}
	return i
}

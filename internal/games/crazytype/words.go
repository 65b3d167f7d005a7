package crazytype

import (
	"math/rand"
	"unicode"
)

// WordSource supplies the text of the next word to spawn.
type WordSource interface {
	NextWord() string
}

// WordState tracks how a word left (or has not yet left) the playfield.
type WordState int

const (
	WordFalling   WordState = iota // still on the playfield
	WordCompleted                  // every character typed
	WordMissed                     // fell past the bottom boundary
	WordCleared                    // removed by a Clear power-up
)

// FallingWord is one word on the playfield. It holds no rendering state.
type FallingWord struct {
	ID        uint64 // spawn sequence number, increasing
	Text      string
	Progress  int // correctly typed leading characters
	HitPoints int // characters left to type
	Speed     float64
	X, Y      float64
	Tier      string
	State     WordState

	runes []rune
}

func newFallingWord(id uint64, text string, tier Tier, speed, x, y float64) *FallingWord {
	runes := []rune(text)
	return &FallingWord{
		ID:        id,
		Text:      text,
		HitPoints: len(runes),
		Speed:     speed,
		X:         x,
		Y:         y,
		Tier:      tier.Name,
		runes:     runes,
	}
}

// Len returns the word length in characters.
func (w *FallingWord) Len() int {
	return len(w.runes)
}

// Typed returns the already typed prefix.
func (w *FallingWord) Typed() string {
	return string(w.runes[:w.Progress])
}

// Remaining returns the part still to type.
func (w *FallingWord) Remaining() string {
	return string(w.runes[w.Progress:])
}

// matches reports whether ch is the next expected character, ignoring case.
func (w *FallingWord) matches(ch rune) bool {
	if w.Progress >= len(w.runes) {
		return false
	}
	return unicode.ToLower(w.runes[w.Progress]) == ch
}

func (w *FallingWord) done() bool {
	return w.HitPoints <= 0 || w.Progress >= len(w.runes)
}

// pickTier selects a tier by weight. Falls back to the first tier when the
// weights are unusable or rounding lets the scan run off the end.
func pickTier(rng *rand.Rand, tiers []Tier) Tier {
	if len(tiers) == 0 {
		return Tier{Name: "easy", MinSpeed: 45, MaxSpeed: 70, Weight: 1}
	}

	total := 0.0
	for _, t := range tiers {
		total += t.Weight
	}
	if total <= 0 {
		return tiers[0]
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	for _, t := range tiers {
		cumulative += t.Weight
		if roll < cumulative {
			return t
		}
	}
	return tiers[0]
}

// randInt returns an integer in [lo, hi], inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

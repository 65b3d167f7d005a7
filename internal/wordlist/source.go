package wordlist

import "math/rand"

// Source picks words uniformly at random from a fixed list.
type Source struct {
	words []string
	rng   *rand.Rand
}

// NewSource creates a seeded source over words. An empty list falls back
// to the built-in words.
func NewSource(words []string, seed int64) *Source {
	if len(words) == 0 {
		words = Builtin()
	}
	return &Source{
		words: words,
		rng:   rand.New(rand.NewSource(seed)), //#nosec G404 -- game randomness
	}
}

// NextWord returns a random word from the list.
func (s *Source) NextWord() string {
	return s.words[s.rng.Intn(len(s.words))]
}

// Len returns the number of words in the list.
func (s *Source) Len() int {
	return len(s.words)
}

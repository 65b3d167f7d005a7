package wordlist

import (
	"unicode"
	"unicode/utf8"
)

// MaxWordLen is the longest accepted word, in characters.
const MaxWordLen = 17

// Valid reports whether word can appear on the playfield: between one and
// MaxWordLen characters, letters only.
func Valid(word string) bool {
	n := utf8.RuneCountInString(word)
	if n == 0 || n > MaxWordLen {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

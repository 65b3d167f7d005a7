package wordlist

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed words.txt
var builtinText string

var (
	builtinOnce  sync.Once
	builtinWords []string
)

// Builtin returns a copy of the embedded default word list.
func Builtin() []string {
	builtinOnce.Do(func() {
		words, err := Parse(strings.NewReader(builtinText))
		if err != nil {
			panic("wordlist: embedded word list: " + err.Error())
		}
		builtinWords = words
	})

	out := make([]string, len(builtinWords))
	copy(out, builtinWords)
	return out
}

// Package wordlist loads and picks words for the typing game.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadWords reads a word list file. Words are separated by any whitespace,
// so both one-word-per-line files and free text work.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path) //#nosec G304 -- user-provided word list path
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	words, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %s: %w", path, err)
	}
	return words, nil
}

// Parse splits r on whitespace, lowercases every token and keeps the
// tokens accepted by Valid.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		if Valid(word) {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// minWordLen keeps one- and two-letter fragments out of the word report.
const minWordLen = 3

// Dictionary is an uppercase word list used only for the plaintext
// word-count report.
type Dictionary struct {
	words  map[string]struct{}
	maxLen int
}

// LoadDictionary reads a dictionary file, one word per line.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	d := &Dictionary{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := clean(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		d.words[word] = struct{}{}
		if len(word) > d.maxLen {
			d.maxLen = len(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return d, nil
}

// Len returns the number of words loaded.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Match scans the text greedily and returns the dictionary words found:
// at every position the longest matching word wins and the scan resumes
// after it.
func (d *Dictionary) Match(text string) []string {
	if d.Len() == 0 {
		return nil
	}
	var found []string
	for i := 0; i < len(text); {
		best := ""
		limit := d.maxLen
		if rest := len(text) - i; limit > rest {
			limit = rest
		}
		for l := limit; l >= minWordLen; l-- {
			if _, ok := d.words[text[i:i+l]]; ok {
				best = text[i : i+l]
				break
			}
		}
		if best == "" {
			i++
			continue
		}
		found = append(found, best)
		i += len(best)
	}
	return found
}

package alphabet

import (
	"fmt"
	"strings"
)

// Size is the number of letters in the Latin alphabet.
const Size = 26

// Keyed is a permutation of the 26 letter indices. Index i holds the
// letter written in row i of the tableau.
type Keyed [Size]byte

// Straight returns the identity alphabet ABCDEFGHIJKLMNOPQRSTUVWXYZ.
func Straight() Keyed {
	var a Keyed
	for i := 0; i < Size; i++ {
		a[i] = byte(i)
	}
	return a
}

// FromKeyword builds a keyed alphabet from a keyword: the keyword's
// distinct letters in order of first appearance, followed by the
// remaining letters in ascending order. It returns the alphabet and the
// keyword prefix length (the number of distinct keyword letters).
func FromKeyword(word string) (Keyed, int, error) {
	var a Keyed
	var used [Size]bool
	n := 0
	for _, r := range strings.ToUpper(word) {
		if r < 'A' || r > 'Z' {
			return a, 0, fmt.Errorf("keyword must be alphabetic only, got %q", word)
		}
		idx := byte(r - 'A')
		if used[idx] {
			continue
		}
		used[idx] = true
		a[n] = idx
		n++
	}
	tail := n
	for i := 0; i < Size; i++ {
		if !used[i] {
			a[tail] = byte(i)
			tail++
		}
	}
	return a, n, nil
}

// Inverse returns the position table of the alphabet: inv[letter] is the
// row of the tableau holding that letter.
func (a *Keyed) Inverse() [Size]byte {
	var inv [Size]byte
	for i, v := range a {
		inv[v] = byte(i)
	}
	return inv
}

// Valid reports whether the alphabet is a permutation of the 26 letters.
func (a *Keyed) Valid() bool {
	var seen [Size]bool
	for _, v := range a {
		if v >= Size || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (a Keyed) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, v := range a {
		b.WriteByte('A' + v)
	}
	return b.String()
}

// ToIndices converts uppercase A-Z text to letter indices. Any other
// character is an error; callers are expected to filter input first.
func ToIndices(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("non-alphabetic character %q at position %d", c, i)
		}
		out = append(out, c-'A')
	}
	return out, nil
}

// ToText converts letter indices back to uppercase text.
func ToText(idx []byte) string {
	var b strings.Builder
	b.Grow(len(idx))
	for _, v := range idx {
		b.WriteByte('A' + v)
	}
	return b.String()
}

// Frequencies tallies the letter counts of the sequence.
func Frequencies(idx []byte) [Size]int {
	var f [Size]int
	for _, v := range idx {
		f[v]++
	}
	return f
}

package crib

import (
	"fmt"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
)

// Crib is a partial known-plaintext mask aligned to the ciphertext:
// parallel position and value arrays, positions strictly increasing.
// A zero-length crib means nothing is known.
type Crib struct {
	Positions []int
	Values    []byte
}

// Parse reads a crib mask of the same length as the ciphertext, where
// underscores mark unknown positions and A-Z letters known plaintext.
func Parse(mask string, ciphertextLen int) (*Crib, error) {
	if len(mask) != ciphertextLen {
		return nil, fmt.Errorf("crib length %d does not match ciphertext length %d", len(mask), ciphertextLen)
	}
	c := &Crib{}
	for i := 0; i < len(mask); i++ {
		ch := mask[i]
		switch {
		case ch == '_':
		case ch >= 'A' && ch <= 'Z':
			c.Positions = append(c.Positions, i)
			c.Values = append(c.Values, ch-'A')
		default:
			return nil, fmt.Errorf("crib position %d: expected A-Z or '_', got %q", i, ch)
		}
	}
	return c, nil
}

// Len returns the number of known plaintext letters.
func (c *Crib) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Positions)
}

// Matches counts the crib letters the decryption agrees with.
func (c *Crib) Matches(pt []byte) int {
	if c.Len() == 0 {
		return 0
	}
	n := 0
	for i, pos := range c.Positions {
		if pt[pos] == c.Values[i] {
			n++
		}
	}
	return n
}

// SatisfiesPeriod prechecks a cycleword length against the cribs: within
// each column of the period, a plaintext letter must always pair with
// the same ciphertext letter and vice versa, since the column is a
// simple substitution. An empty crib satisfies every period.
func (c *Crib) SatisfiesPeriod(ct []byte, l int) bool {
	if c.Len() == 0 {
		return true
	}
	for k := 0; k < l; k++ {
		var plainTo, cipherTo [alphabet.Size]int8
		for i := range plainTo {
			plainTo[i] = -1
			cipherTo[i] = -1
		}
		for i, pos := range c.Positions {
			if pos%l != k {
				continue
			}
			pl := c.Values[i]
			cl := ct[pos]
			if plainTo[pl] >= 0 && plainTo[pl] != int8(cl) {
				return false
			}
			if cipherTo[cl] >= 0 && cipherTo[cl] != int8(pl) {
				return false
			}
			plainTo[pl] = int8(cl)
			cipherTo[cl] = int8(pl)
		}
	}
	return true
}

// ConstrainCycleword propagates the cribs through the candidate
// alphabets into the cycleword: each known plaintext letter pins the key
// letter of its column. It reports a contradiction when two cribs
// demand different letters for the same slot, in which case the keyword
// candidate itself is inconsistent and must be perturbed. Slots no crib
// reaches keep their current letters.
func (c *Crib) ConstrainCycleword(tb *cipher.Tableau, ct []byte, l int, cycleword []byte) bool {
	if c.Len() == 0 {
		return false
	}
	ptInv := tb.PTInv()
	ctInv := tb.CTInv()
	ctAlpha := tb.CT()
	var slots [64]bool
	set := slots[:]
	if l > len(slots) {
		set = make([]bool, l)
	}
	for i, pos := range c.Positions {
		p := ctInv[ct[pos]]
		q := ptInv[c.Values[i]]
		var rot byte
		if tb.Variant() {
			rot = (q + alphabet.Size - p) % alphabet.Size
		} else {
			rot = (p + alphabet.Size - q) % alphabet.Size
		}
		slot := pos % l
		want := ctAlpha[rot]
		if set[slot] && cycleword[slot] != want {
			return true
		}
		cycleword[slot] = want
		set[slot] = true
	}
	return false
}

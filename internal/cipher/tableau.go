package cipher

import (
	"github.com/abdorrahmani/polysolve/internal/alphabet"
)

// Tableau is the shared decrypt/encrypt primitive for the whole family.
// It binds a cipher type, the reciprocal flag and the two keyed
// alphabets, with their position tables precomputed. A Tableau is a
// plain value; Reset reuses it without allocating.
type Tableau struct {
	typ     Type
	variant bool
	pt      alphabet.Keyed
	ct      alphabet.Keyed
	ptInv   [alphabet.Size]byte
	ctInv   [alphabet.Size]byte
}

// New builds a tableau for the given cipher type. The type's Sub is
// used, so autokey members get their sub-tableau.
func New(t Type, variant bool, pt, ct alphabet.Keyed) *Tableau {
	tb := &Tableau{}
	tb.Reset(t, variant, pt, ct)
	return tb
}

// Reset rebinds the tableau in place.
func (tb *Tableau) Reset(t Type, variant bool, pt, ct alphabet.Keyed) {
	tb.typ = t.Sub()
	tb.variant = variant
	tb.pt = pt
	tb.ct = ct
	tb.ptInv = pt.Inverse()
	tb.ctInv = ct.Inverse()
}

// PT returns the plaintext alphabet.
func (tb *Tableau) PT() alphabet.Keyed { return tb.pt }

// CT returns the ciphertext alphabet.
func (tb *Tableau) CT() alphabet.Keyed { return tb.ct }

// PTInv returns the plaintext alphabet position table.
func (tb *Tableau) PTInv() [alphabet.Size]byte { return tb.ptInv }

// CTInv returns the ciphertext alphabet position table.
func (tb *Tableau) CTInv() [alphabet.Size]byte { return tb.ctInv }

// Variant reports the reciprocal direction flag.
func (tb *Tableau) Variant() bool { return tb.variant }

// DecryptChar decrypts a single letter c under key letter k.
func (tb *Tableau) DecryptChar(c, k byte) byte {
	switch tb.typ {
	case Beaufort:
		return (k + alphabet.Size - c) % alphabet.Size
	case Porta:
		return portaChar(c, k)
	default:
		p := tb.ctInv[c]
		q := tb.ctInv[k]
		var d byte
		if tb.variant {
			d = (p + q) % alphabet.Size
		} else {
			d = (p + alphabet.Size - q) % alphabet.Size
		}
		return tb.pt[d]
	}
}

// EncryptChar encrypts a single letter m under key letter k.
func (tb *Tableau) EncryptChar(m, k byte) byte {
	switch tb.typ {
	case Beaufort:
		return (k + alphabet.Size - m) % alphabet.Size
	case Porta:
		return portaChar(m, k)
	default:
		p := tb.ptInv[m]
		q := tb.ctInv[k]
		var d byte
		if tb.variant {
			d = (p + alphabet.Size - q) % alphabet.Size
		} else {
			d = (p + q) % alphabet.Size
		}
		return tb.ct[d]
	}
}

// Decrypt decrypts ct into pt under the periodic cycleword key. The key
// holds letter indices; its length is the cipher's period. pt must be at
// least as long as ct.
func (tb *Tableau) Decrypt(key, ct, pt []byte) {
	l := len(key)
	for i, c := range ct {
		pt[i] = tb.DecryptChar(c, key[i%l])
	}
}

// Encrypt encrypts pt into ct under the periodic cycleword key.
func (tb *Tableau) Encrypt(key, pt, ct []byte) {
	l := len(key)
	for i, m := range pt {
		ct[i] = tb.EncryptChar(m, key[i%l])
	}
}

// portaChar applies the self-inverse Porta rule: the key letter selects
// one of thirteen row pairs and the two alphabet halves swap.
func portaChar(c, k byte) byte {
	s := k >> 1
	if c < 13 {
		return (c+s)%13 + 13
	}
	return (c - s) % 13
}

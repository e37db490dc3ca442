package solver

import (
	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
)

// DeriveCycleword solves the cycleword exactly for a fixed pair of
// alphabets. Each column of the period is a simple substitution, so the
// key letter whose decryption makes the column most English-like is the
// column's correct key; scoring all 26 candidates against the monogram
// table is closed-form and removes the cycleword dimension from the
// stochastic search. Not applicable to autokey ciphers, whose keystream
// is aperiodic.
func DeriveCycleword(tb *cipher.Tableau, ct []byte, l int, cycle []byte) {
	ctAlpha := tb.CT()
	for k := 0; k < l; k++ {
		best := -1.0
		bestS := 0
		for s := 0; s < alphabet.Size; s++ {
			keyLetter := ctAlpha[s]
			var f [alphabet.Size]int
			n := 0
			for i := k; i < len(ct); i += l {
				f[tb.DecryptChar(ct[i], keyLetter)]++
				n++
			}
			if n == 0 {
				continue
			}
			dot := 0.0
			for m, c := range f {
				if c > 0 {
					dot += float64(c) * alphabet.Monograms[m]
				}
			}
			score := dot / float64(n)
			if score > best {
				best = score
				bestS = s
			}
		}
		cycle[k] = ctAlpha[bestS]
	}
}

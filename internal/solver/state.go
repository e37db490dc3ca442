package solver

import (
	"math/rand"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
)

// MaxCycleword bounds the cycleword buffer carried by a search state.
const MaxCycleword = 64

// State is one search element: the two keyed alphabets with their
// keyword prefix lengths, and the periodic cycleword (the autokey
// primer for running-key ciphers). States are plain values copied by
// assignment; the climber never aliases them.
type State struct {
	PT       alphabet.Keyed
	CT       alphabet.Keyed
	PTPrefix int
	CTPrefix int
	Cycle    [MaxCycleword]byte
	L        int
}

// Cycleword returns the live slice of the cycleword buffer.
func (s *State) Cycleword() []byte {
	return s.Cycle[:s.L]
}

// NewRandomState draws a feasible random state for the cipher type:
// keyed alphabets where the cipher calls for them, straight alphabets
// elsewhere, and a uniform random cycleword of length l.
func NewRandomState(rng *rand.Rand, typ cipher.Type, l, wpt, wct int) State {
	st := State{L: l, PTPrefix: wpt, CTPrefix: wct}
	if ptKeyed(typ) {
		st.PT = randomKeyedAlphabet(rng, wpt)
	} else {
		st.PT = alphabet.Straight()
	}
	switch {
	case typ.Sub() == cipher.Quagmire3:
		st.CT = st.PT
		st.CTPrefix = st.PTPrefix
	case ctKeyed(typ):
		st.CT = randomKeyedAlphabet(rng, wct)
	default:
		st.CT = alphabet.Straight()
	}
	randomCycleword(rng, st.Cycleword())
	return st
}

// ptKeyed reports whether the plaintext alphabet is keyed for the type.
func ptKeyed(typ cipher.Type) bool {
	switch typ.Sub() {
	case cipher.Quagmire1, cipher.Quagmire3, cipher.Quagmire4:
		return true
	default:
		return false
	}
}

// ctKeyed reports whether the ciphertext alphabet is keyed for the type.
func ctKeyed(typ cipher.Type) bool {
	switch typ.Sub() {
	case cipher.Quagmire2, cipher.Quagmire4:
		return true
	default:
		return false
	}
}

// Feasible reports whether both alphabets are permutations and every
// cycleword letter is a valid index.
func (s *State) Feasible() bool {
	if !s.PT.Valid() || !s.CT.Valid() {
		return false
	}
	if s.L < 1 || s.L > MaxCycleword {
		return false
	}
	for _, v := range s.Cycleword() {
		if v >= alphabet.Size {
			return false
		}
	}
	return true
}

package solver

import (
	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
	"github.com/abdorrahmani/polysolve/internal/crib"
	"github.com/abdorrahmani/polysolve/internal/ngram"
)

// Weights are the mixing coefficients of the composite fitness. The
// composite is normalized by the plain sum of the four weights.
type Weights struct {
	Ngram   float64
	Crib    float64
	IoC     float64
	Entropy float64
}

// DefaultWeights favor crib agreement heavily when a crib exists.
var DefaultWeights = Weights{Ngram: 12, Crib: 36, IoC: 0, Entropy: 0}

// Scorer rates solver states against a ciphertext. It owns the
// decryption scratch buffers, so scoring allocates nothing.
type Scorer struct {
	model     *ngram.Model
	cribs     *crib.Crib
	weights   Weights
	ct        []byte
	pt        []byte
	keystream []byte
	typ       cipher.Type
}

// NewScorer builds a scorer for one ciphertext and cipher type. cribs
// may be nil.
func NewScorer(typ cipher.Type, ct []byte, cribs *crib.Crib, model *ngram.Model, weights Weights) *Scorer {
	return &Scorer{
		model:     model,
		cribs:     cribs,
		weights:   weights,
		ct:        ct,
		pt:        make([]byte, len(ct)),
		keystream: make([]byte, MaxCycleword+len(ct)),
		typ:       typ,
	}
}

// Decrypt runs the state's decryption into the scorer's scratch buffer
// and returns it. The buffer is valid until the next call.
func (sc *Scorer) Decrypt(tb *cipher.Tableau, st *State) []byte {
	if sc.typ.IsAutokey() {
		tb.DecryptAutokey(st.Cycleword(), sc.ct, sc.pt, sc.keystream)
	} else {
		tb.Decrypt(st.Cycleword(), sc.ct, sc.pt)
	}
	return sc.pt
}

// Score decrypts the ciphertext under the state and rates the result.
// With no crib and no IoC or entropy weight the composite collapses to
// the n-gram term alone.
func (sc *Scorer) Score(tb *cipher.Tableau, st *State) float64 {
	pt := sc.Decrypt(tb, st)
	ngramScore := sc.model.Score(pt)
	if sc.cribs.Len() == 0 && sc.weights.IoC == 0 && sc.weights.Entropy == 0 {
		return ngramScore
	}

	cribScore := 0.0
	if k := sc.cribs.Len(); k > 0 {
		cribScore = float64(sc.cribs.Matches(pt)) / float64(k)
	}
	iocDist := alphabet.Size*alphabet.IndexOfCoincidence(pt) - alphabet.EnglishIoC
	iocScore := 1 / (1 + iocDist*iocDist)
	entDist := alphabet.Entropy(pt) - alphabet.EnglishEntropy
	entropyScore := 1 / (1 + entDist*entDist)

	w := sc.weights
	total := w.Ngram + w.Crib + w.IoC + w.Entropy
	if total == 0 {
		return ngramScore
	}
	return (w.Ngram*ngramScore + w.Crib*cribScore + w.IoC*iocScore + w.Entropy*entropyScore) / total
}

// CribMatches counts crib agreements of the state's decryption.
func (sc *Scorer) CribMatches(tb *cipher.Tableau, st *State) int {
	if sc.cribs.Len() == 0 {
		return 0
	}
	return sc.cribs.Matches(sc.Decrypt(tb, st))
}

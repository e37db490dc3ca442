package solver

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/abdorrahmani/polysolve/internal/cipher"
	"github.com/abdorrahmani/polysolve/internal/crib"
	"github.com/abdorrahmani/polysolve/internal/ngram"
	"github.com/abdorrahmani/polysolve/internal/period"
)

// fallbackMaxPeriod bounds the cycleword lengths tried when the period
// estimator accepts nothing.
const fallbackMaxPeriod = 15

// Search drives the whole attack: it walks every plausible (period,
// PT keyword length, CT keyword length) triple, applies the cipher's
// pruning rules, prechecks the cribs, runs the climber on each cell and
// keeps the global best.
type Search struct {
	Type    cipher.Type
	Variant bool

	Ciphertext []byte
	Cribs      *crib.Crib
	Model      *ngram.Model
	Rng        *rand.Rand

	Climb   Options
	Weights Weights

	// Period selection: a fixed cycleword length wins over estimation.
	CyclewordLen    int
	MaxCyclewordLen int
	SigmaThreshold  float64
	IoCThreshold    float64

	// Keyword prefix lengths: fixed when positive, otherwise every
	// length up to the maximum is tried.
	PTKeywordLen  int
	CTKeywordLen  int
	MaxKeywordLen int

	// Stop is checked between restarts; Search finishes the current
	// climb and returns the best so far.
	Stop atomic.Bool

	// Verbose, when set, receives one line per visited cell.
	Verbose func(format string, args ...interface{})
}

// Result is the best solution of a search.
type Result struct {
	Score     float64
	State     State
	Type      cipher.Type
	Variant   bool
	Plaintext []byte

	CribMatches int
	CribTotal   int
	Periods     []int
}

// Run executes the search and returns the global best.
func (s *Search) Run() (*Result, error) {
	if len(s.Ciphertext) == 0 {
		return nil, fmt.Errorf("ciphertext is empty")
	}
	periods, err := s.periods()
	if err != nil {
		return nil, err
	}

	scorer := NewScorer(s.Type, s.Ciphertext, s.Cribs, s.Model, s.Weights)
	climber := NewClimber(s.Type, s.Variant, s.Ciphertext, s.Cribs, scorer, s.Rng, &s.Stop, s.Climb)

	result := &Result{Type: s.Type, Variant: s.Variant, Periods: periods, CribTotal: s.Cribs.Len()}
	found := false

	for _, l := range periods {
		if !s.Type.IsAutokey() && !s.Cribs.SatisfiesPeriod(s.Ciphertext, l) {
			if s.Verbose != nil {
				s.Verbose("period %d contradicts the cribs, skipped", l)
			}
			continue
		}
		for _, wpt := range s.ptLengths() {
			for _, wct := range s.ctLengths(wpt) {
				if s.Stop.Load() {
					break
				}
				if s.Verbose != nil {
					s.Verbose("searching period=%d ptkeyword=%d ctkeyword=%d", l, wpt, wct)
				}
				st, score := climber.Run(l, wpt, wct)
				if !found || score > result.Score {
					result.Score = score
					result.State = st
					found = true
				}
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("no feasible (period, keyword length) combination for %s", s.Type)
	}

	tb := cipher.New(s.Type, s.Variant, result.State.PT, result.State.CT)
	result.Plaintext = append([]byte(nil), scorer.Decrypt(tb, &result.State)...)
	result.CribMatches = s.Cribs.Matches(result.Plaintext)
	return result, nil
}

// periods returns the cycleword lengths to attack. A user-fixed length
// wins; autokey ciphers take the full range because the Friedman test
// does not apply to an aperiodic keystream; otherwise the columnar IoC
// estimator filters the range, falling back to 1..15 when it accepts
// nothing.
func (s *Search) periods() ([]int, error) {
	maxLen := s.MaxCyclewordLen
	if maxLen < 1 {
		maxLen = fallbackMaxPeriod
	}
	if maxLen > MaxCycleword {
		return nil, fmt.Errorf("max cycleword length %d exceeds %d", maxLen, MaxCycleword)
	}
	if s.CyclewordLen > 0 {
		if s.CyclewordLen > MaxCycleword {
			return nil, fmt.Errorf("cycleword length %d exceeds %d", s.CyclewordLen, MaxCycleword)
		}
		return []int{s.CyclewordLen}, nil
	}
	if s.Type.IsAutokey() {
		return rangeInts(1, maxLen), nil
	}
	candidates := period.Candidates(s.Ciphertext, maxLen, s.SigmaThreshold, s.IoCThreshold)
	if len(candidates) == 0 {
		limit := fallbackMaxPeriod
		if limit > maxLen {
			limit = maxLen
		}
		return rangeInts(1, limit), nil
	}
	return candidates, nil
}

// ptLengths returns the PT keyword prefix lengths to try, after the
// cipher's pruning rules.
func (s *Search) ptLengths() []int {
	switch s.Type.Sub() {
	case cipher.Vigenere, cipher.Beaufort, cipher.Porta, cipher.Quagmire2:
		return []int{1}
	}
	if s.Climb.FixedPT != nil || s.PTKeywordLen > 0 {
		return []int{s.fixedPTLen()}
	}
	return rangeInts(1, s.maxKeywordLen())
}

// ctLengths returns the CT keyword prefix lengths paired with a given
// PT length.
func (s *Search) ctLengths(wpt int) []int {
	switch s.Type.Sub() {
	case cipher.Vigenere, cipher.Beaufort, cipher.Porta, cipher.Quagmire1:
		return []int{1}
	case cipher.Quagmire3:
		return []int{wpt}
	}
	if s.Climb.SameKey {
		return []int{wpt}
	}
	if s.Climb.FixedCT != nil || s.CTKeywordLen > 0 {
		return []int{s.fixedCTLen()}
	}
	return rangeInts(1, s.maxKeywordLen())
}

func (s *Search) fixedPTLen() int {
	if s.PTKeywordLen > 0 {
		return s.PTKeywordLen
	}
	return 1
}

func (s *Search) fixedCTLen() int {
	if s.CTKeywordLen > 0 {
		return s.CTKeywordLen
	}
	return 1
}

func (s *Search) maxKeywordLen() int {
	if s.MaxKeywordLen > 0 {
		return s.MaxKeywordLen
	}
	return 12
}

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

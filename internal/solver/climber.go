package solver

import (
	"math/rand"
	"sync/atomic"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/cipher"
	"github.com/abdorrahmani/polysolve/internal/crib"
)

// Options tune the shotgun hill-climber.
type Options struct {
	HillClimbs        int
	Restarts          int
	BacktrackProb     float64
	KeywordPermProb   float64
	SlipProb          float64
	OptimalCycleword  bool
	FrequencyWeighted bool
	SameKey           bool

	// FixedPT and FixedCT pin a keyed alphabet so the climber never
	// mutates it.
	FixedPT *alphabet.Keyed
	FixedCT *alphabet.Keyed

	// Progress, when set, receives the running best after each restart.
	Progress func(restart, iterations int, bestScore float64, plaintext []byte)
}

// Climber is the slippery shotgun hill-climber: an outer restart loop
// that either backtracks to the best state or redraws at random, and an
// inner loop that mutates, optionally re-derives the cycleword, scores,
// and accepts improvements (or slips to a worse state with a small
// probability to escape local maxima).
type Climber struct {
	opts    Options
	typ     cipher.Type
	variant bool
	rng     *rand.Rand
	scorer  *Scorer
	cribs   *crib.Crib
	ct      []byte
	stop    *atomic.Bool

	tb      cipher.Tableau
	best    State
	current State
	local   State
}

// NewClimber builds a climber for one cipher type over one ciphertext.
// stop may be nil; when non-nil it is checked between restarts.
func NewClimber(typ cipher.Type, variant bool, ct []byte, cribs *crib.Crib, scorer *Scorer, rng *rand.Rand, stop *atomic.Bool, opts Options) *Climber {
	return &Climber{
		opts:    opts,
		typ:     typ,
		variant: variant,
		rng:     rng,
		scorer:  scorer,
		cribs:   cribs,
		ct:      ct,
		stop:    stop,
	}
}

// Run searches the (period, PT prefix, CT prefix) cell and returns the
// best state found with its score. The best score never decreases over
// the course of a run.
func (c *Climber) Run(l, wpt, wct int) (State, float64) {
	bestScore := 0.0
	haveBest := false
	derivable := c.opts.OptimalCycleword && !c.typ.IsAutokey()

	for restart := 0; restart < c.opts.Restarts; restart++ {
		if c.stop != nil && c.stop.Load() {
			break
		}

		c.initState(&c.current, l, wpt, wct, haveBest && bestScore > 0)
		c.resetTableau(&c.current)
		if derivable {
			DeriveCycleword(&c.tb, c.ct, l, c.current.Cycleword())
		}
		currentScore := c.scorer.Score(&c.tb, &c.current)
		if !haveBest || currentScore > bestScore {
			c.best = c.current
			bestScore = currentScore
			haveBest = true
		}

		mustPerturbKeyword := false
		for iter := 0; iter < c.opts.HillClimbs; iter++ {
			c.local = c.current
			c.mutate(&c.local, mustPerturbKeyword)
			mustPerturbKeyword = false
			c.resetTableau(&c.local)

			if !derivable && c.typ.IsQuagmire() && !c.typ.IsAutokey() && c.cribs.Len() > 0 {
				if c.cribs.ConstrainCycleword(&c.tb, c.ct, l, c.local.Cycleword()) {
					// The keyword candidate contradicts the cribs;
					// schedule a keyword move and reject this state.
					mustPerturbKeyword = true
					continue
				}
			}
			if derivable {
				DeriveCycleword(&c.tb, c.ct, l, c.local.Cycleword())
			}

			score := c.scorer.Score(&c.tb, &c.local)
			if score > currentScore || c.rng.Float64() < c.opts.SlipProb {
				c.current = c.local
				currentScore = score
			}
			if currentScore > bestScore {
				c.best = c.current
				bestScore = currentScore
			}
		}

		if c.opts.Progress != nil {
			c.resetTableau(&c.best)
			c.opts.Progress(restart, c.opts.HillClimbs, bestScore, c.scorer.Decrypt(&c.tb, &c.best))
		}
	}

	return c.best, bestScore
}

func (c *Climber) resetTableau(st *State) {
	c.tb.Reset(c.typ, c.variant, st.PT, st.CT)
}

// initState fills the state for a new restart: a backtrack to the best
// state with the configured probability, otherwise a fresh random draw
// respecting the cipher's alphabet constraints.
func (c *Climber) initState(st *State, l, wpt, wct int, canBacktrack bool) {
	if canBacktrack && c.rng.Float64() < c.opts.BacktrackProb {
		*st = c.best
		return
	}
	*st = NewRandomState(c.rng, c.typ, l, wpt, wct)
	if c.opts.FixedPT != nil {
		st.PT = *c.opts.FixedPT
	}
	if c.opts.FixedCT != nil {
		st.CT = *c.opts.FixedCT
	}
	if c.ctMirrorsPT() {
		st.CT = st.PT
		st.CTPrefix = st.PTPrefix
	}
}

// mutate applies one move to the state. Keyword moves follow the
// cipher's alphabet constraints; cycleword moves touch a single slot.
func (c *Climber) mutate(st *State, mustPerturbKeyword bool) {
	derivable := c.opts.OptimalCycleword && !c.typ.IsAutokey()
	keyworded := c.mutableKeyword()

	if !keyworded {
		mutateCycleword(c.rng, st.Cycleword())
		return
	}
	if !derivable && !mustPerturbKeyword && c.rng.Float64() >= c.opts.KeywordPermProb {
		mutateCycleword(c.rng, st.Cycleword())
		return
	}
	c.mutateKeywords(st)
}

// mutableKeyword reports whether the cipher carries a keyed alphabet the
// climber is free to mutate.
func (c *Climber) mutableKeyword() bool {
	switch c.typ.Sub() {
	case cipher.Vigenere, cipher.Beaufort, cipher.Porta:
		return false
	case cipher.Quagmire1:
		return c.opts.FixedPT == nil
	case cipher.Quagmire2:
		return c.opts.FixedCT == nil
	case cipher.Quagmire3:
		return c.opts.FixedPT == nil
	default: // Quagmire4
		return c.opts.FixedPT == nil || c.opts.FixedCT == nil
	}
}

func (c *Climber) mutateKeywords(st *State) {
	switch c.typ.Sub() {
	case cipher.Quagmire1, cipher.Quagmire3:
		mutateKeyword(c.rng, &st.PT, st.PTPrefix, c.opts.FrequencyWeighted)
	case cipher.Quagmire2:
		mutateKeyword(c.rng, &st.CT, st.CTPrefix, c.opts.FrequencyWeighted)
	case cipher.Quagmire4:
		ptFree := c.opts.FixedPT == nil && !c.opts.SameKey
		ctFree := c.opts.FixedCT == nil && !c.opts.SameKey
		switch {
		case c.opts.SameKey:
			mutateKeyword(c.rng, &st.PT, st.PTPrefix, c.opts.FrequencyWeighted)
		case ptFree && ctFree:
			if c.rng.Float64() < 0.5 {
				mutateKeyword(c.rng, &st.PT, st.PTPrefix, c.opts.FrequencyWeighted)
			} else {
				mutateKeyword(c.rng, &st.CT, st.CTPrefix, c.opts.FrequencyWeighted)
			}
		case ptFree:
			mutateKeyword(c.rng, &st.PT, st.PTPrefix, c.opts.FrequencyWeighted)
		case ctFree:
			mutateKeyword(c.rng, &st.CT, st.CTPrefix, c.opts.FrequencyWeighted)
		}
	}
	if c.ctMirrorsPT() {
		st.CT = st.PT
		st.CTPrefix = st.PTPrefix
	}
}

// ctMirrorsPT reports whether the ciphertext alphabet must track the
// plaintext alphabet (Quagmire III, or any Quagmire under -samekey).
func (c *Climber) ctMirrorsPT() bool {
	if c.typ.Sub() == cipher.Quagmire3 {
		return true
	}
	return c.opts.SameKey && c.typ.IsQuagmire()
}

package solver

import (
	"math/rand"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
)

// Keyword perturbation picks swap-within over swap-outside with an
// 80/20 split.
const swapWithinProb = 0.8

// randomKeyedAlphabet draws a keyed alphabet whose prefix holds `prefix`
// distinct random letters and whose suffix keeps the remaining letters
// in ascending order.
func randomKeyedAlphabet(rng *rand.Rand, prefix int) alphabet.Keyed {
	if prefix < 1 {
		prefix = 1
	}
	if prefix > alphabet.Size {
		prefix = alphabet.Size
	}
	var pool [alphabet.Size]byte
	for i := range pool {
		pool[i] = byte(i)
	}
	// Partial Fisher-Yates: only the prefix needs shuffling.
	for i := 0; i < prefix; i++ {
		j := i + rng.Intn(alphabet.Size-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	var a alphabet.Keyed
	copy(a[:prefix], pool[:prefix])
	var used [alphabet.Size]bool
	for _, v := range pool[:prefix] {
		used[v] = true
	}
	tail := prefix
	for i := 0; i < alphabet.Size; i++ {
		if !used[i] {
			a[tail] = byte(i)
			tail++
		}
	}
	return a
}

// randomCycleword fills the slice with uniform random letters.
func randomCycleword(rng *rand.Rand, cycle []byte) {
	for i := range cycle {
		cycle[i] = byte(rng.Intn(alphabet.Size))
	}
}

// mutateCycleword overwrites one uniformly chosen slot with a uniform
// random letter.
func mutateCycleword(rng *rand.Rand, cycle []byte) {
	cycle[rng.Intn(len(cycle))] = byte(rng.Intn(alphabet.Size))
}

// mutateKeyword applies one keyword move to the alphabet: a swap of two
// prefix letters, or an exchange of a prefix letter with a suffix letter
// that re-sorts the suffix. When weighted is set, letters are drawn with
// probability proportional to their English frequency instead of
// uniformly, biasing moves toward high-frequency letters.
func mutateKeyword(rng *rand.Rand, a *alphabet.Keyed, prefix int, weighted bool) {
	if prefix >= alphabet.Size || rng.Float64() < swapWithinProb {
		swapWithin(rng, a, prefix, weighted)
		return
	}
	swapOutside(rng, a, prefix, weighted)
}

func swapWithin(rng *rand.Rand, a *alphabet.Keyed, prefix int, weighted bool) {
	if prefix < 2 {
		return
	}
	i := pickIndex(rng, a, 0, prefix, weighted)
	j := pickIndex(rng, a, 0, prefix, weighted)
	a[i], a[j] = a[j], a[i]
}

// swapOutside moves the letter at a prefix position into the sorted
// suffix and pulls a suffix letter into the vacated slot, preserving the
// sorted-suffix invariant.
func swapOutside(rng *rand.Rand, a *alphabet.Keyed, prefix int, weighted bool) {
	if prefix < 1 || prefix >= alphabet.Size {
		return
	}
	i := pickIndex(rng, a, 0, prefix, weighted)
	j := pickIndex(rng, a, prefix, alphabet.Size, weighted)
	v := a[i]
	a[i] = a[j]
	copy(a[j:alphabet.Size-1], a[j+1:])
	pos := prefix
	for pos < alphabet.Size-1 && a[pos] < v {
		pos++
	}
	copy(a[pos+1:], a[pos:alphabet.Size-1])
	a[pos] = v
}

// pickIndex draws a position in [lo, hi), uniformly or weighted by the
// English frequency of the letter at each position.
func pickIndex(rng *rand.Rand, a *alphabet.Keyed, lo, hi int, weighted bool) int {
	if !weighted {
		return lo + rng.Intn(hi-lo)
	}
	total := 0.0
	for i := lo; i < hi; i++ {
		total += alphabet.Monograms[a[i]]
	}
	r := rng.Float64() * total
	for i := lo; i < hi; i++ {
		r -= alphabet.Monograms[a[i]]
		if r <= 0 {
			return i
		}
	}
	return hi - 1
}

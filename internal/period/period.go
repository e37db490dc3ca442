package period

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
)

// Estimate is the columnar IoC score of one candidate cycleword length.
type Estimate struct {
	Length int
	IoC    float64
	Z      float64
}

// Scan computes the mean columnar index of coincidence for every
// cycleword length from 1 to maxLen, together with the z-score of each
// length against the whole scan. A zero standard deviation across the
// scan yields zero z-scores.
func Scan(ct []byte, maxLen int) []Estimate {
	if maxLen < 1 {
		return nil
	}
	estimates := make([]Estimate, maxLen)
	scores := make([]float64, maxLen)
	for l := 1; l <= maxLen; l++ {
		total := 0.0
		for k := 0; k < l; k++ {
			total += columnIoC(ct, k, l)
		}
		score := total / float64(l)
		estimates[l-1] = Estimate{Length: l, IoC: score}
		scores[l-1] = score
	}

	mean, _ := stats.Mean(scores)
	sigma, _ := stats.StandardDeviationPopulation(scores)
	if sigma > 0 {
		for i := range estimates {
			estimates[i].Z = (estimates[i].IoC - mean) / sigma
		}
	}
	return estimates
}

// Candidates returns the cycleword lengths whose z-score and raw IoC
// both clear their thresholds, ordered by descending IoC with ties on
// the shorter length. An empty result means the Friedman test found no
// periodic structure and the caller should fall back to a fixed range.
func Candidates(ct []byte, maxLen int, sigmaThreshold, iocThreshold float64) []int {
	estimates := Scan(ct, maxLen)
	accepted := make([]Estimate, 0, len(estimates))
	for _, e := range estimates {
		if e.Z >= sigmaThreshold && e.IoC >= iocThreshold {
			accepted = append(accepted, e)
		}
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].IoC != accepted[j].IoC {
			return accepted[i].IoC > accepted[j].IoC
		}
		return accepted[i].Length < accepted[j].Length
	})
	lengths := make([]int, len(accepted))
	for i, e := range accepted {
		lengths[i] = e.Length
	}
	return lengths
}

// columnIoC computes the IoC of the letters at positions k, k+l, k+2l, ...
func columnIoC(ct []byte, k, l int) float64 {
	var f [alphabet.Size]int
	n := 0
	for i := k; i < len(ct); i += l {
		f[ct[i]]++
		n++
	}
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, c := range f {
		sum += float64(c) * float64(c-1)
	}
	return sum / (float64(n) * float64(n-1))
}

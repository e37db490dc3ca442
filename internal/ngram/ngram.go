package ngram

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
)

// Model is a normalized English n-gram log-frequency table. The table
// holds 26^n entries; the entry for gram g0..g(n-1) sits at index
// sum(gi * 26^i). Entries are log(1+count) scaled so the table sums to 1,
// which keeps unseen grams at exactly zero and every entry finite.
type Model struct {
	n     int
	scale float64 // 26^n, precomputed for scoring
	table []float64
}

// Load reads an n-gram frequency file. Each line holds an uppercase gram
// and its corpus count separated by a tab.
func Load(path string, n int) (*Model, error) {
	if n < 1 || n > 6 {
		return nil, fmt.Errorf("ngram size %d out of range [1,6]", n)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ngram file: %w", err)
	}
	defer f.Close()

	size := 1
	for i := 0; i < n; i++ {
		size *= alphabet.Size
	}
	m := &Model{n: n, scale: float64(size), table: make([]float64, size)}

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("ngram file line %d: expected GRAM\\tCOUNT, got %q", line, text)
		}
		gram := fields[0]
		if len(gram) != n {
			return nil, fmt.Errorf("ngram file line %d: gram %q is not %d letters", line, gram, n)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ngram file line %d: invalid count %q", line, fields[1])
		}
		idx := 0
		pow := 1
		for i := 0; i < n; i++ {
			c := gram[i]
			if c < 'A' || c > 'Z' {
				return nil, fmt.Errorf("ngram file line %d: gram %q is not uppercase A-Z", line, gram)
			}
			idx += int(c-'A') * pow
			pow *= alphabet.Size
		}
		m.table[idx] = math.Log(1 + count)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ngram file: %w", err)
	}

	m.normalize()
	return m, nil
}

// FromCounts builds a model from raw gram counts keyed by index. Used by
// tests and the benchmark to avoid file fixtures.
func FromCounts(n int, counts map[int]float64) *Model {
	size := 1
	for i := 0; i < n; i++ {
		size *= alphabet.Size
	}
	m := &Model{n: n, scale: float64(size), table: make([]float64, size)}
	for idx, c := range counts {
		m.table[idx] = math.Log(1 + c)
	}
	m.normalize()
	return m
}

func (m *Model) normalize() {
	sum := 0.0
	for _, v := range m.table {
		sum += v
	}
	if sum == 0 {
		return
	}
	for i := range m.table {
		m.table[i] /= sum
	}
}

// N returns the gram length.
func (m *Model) N() int { return m.n }

// Sum returns the total mass of the table; 1 after a successful load.
func (m *Model) Sum() float64 {
	sum := 0.0
	for _, v := range m.table {
		sum += v
	}
	return sum
}

// Index returns the table index of the gram starting at idx[i].
func (m *Model) Index(idx []byte, i int) int {
	j := 0
	pow := 1
	for k := 0; k < m.n; k++ {
		j += int(idx[i+k]) * pow
		pow *= alphabet.Size
	}
	return j
}

// Score rates a letter sequence by its English n-gram likelihood: the
// mean table entry over the first len-n windows (the window ending on
// the last letter is not counted), rescaled by 26^n so typical English
// lands near single digits instead of vanishing. A sequence of at most n
// letters scores 0.
func (m *Model) Score(idx []byte) float64 {
	windows := len(idx) - m.n
	if windows <= 0 {
		return 0
	}
	total := 0.0
	// Slide the window by dividing out the low digit instead of
	// recomputing the full index each step.
	j := m.Index(idx, 0)
	high := int(m.scale) / alphabet.Size
	for i := 0; ; i++ {
		total += m.table[j]
		if i == windows-1 {
			break
		}
		j = j/alphabet.Size + int(idx[i+m.n])*high
	}
	return total * m.scale / float64(windows)
}

package alphabet

// Monograms holds the relative frequencies of English letters, A through Z.
var Monograms = [Size]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015,
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749,
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758,
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074,
}

// Reference statistics of English plaintext used by the fitness function.
const (
	// EnglishIoC is 26 times the expected index of coincidence of English.
	EnglishIoC = 1.742
	// EnglishEntropy is the expected monogram entropy (natural log) of English.
	EnglishEntropy = 2.85
)

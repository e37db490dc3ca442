package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/abdorrahmani/polysolve/internal/config"
)

// Options collects every command-line setting of a solver session.
// Defaults come from the loaded configuration; flags override them.
type Options struct {
	Type string

	CipherFile     string
	BatchFile      string
	CribFile       string
	NgramFile      string
	NgramSize      int
	DictionaryFile string

	KeywordLen    int
	PTKeywordLen  int
	CTKeywordLen  int
	MaxKeywordLen int

	CyclewordLen    int
	MaxCyclewordLen int

	PTKeyword string
	CTKeyword string

	HillClimbs      int
	Restarts        int
	BacktrackProb   float64
	KeywordPermProb float64
	SlipProb        float64

	SigmaThreshold float64
	IoCThreshold   float64

	WeightNgram   float64
	WeightCrib    float64
	WeightIoC     float64
	WeightEntropy float64

	OptimalCycle    bool
	StochasticCycle bool
	Variant         bool
	SameKey         bool
	Verbose         bool
	Bench           bool

	Seed       string
	ConfigFile string
}

// PeekConfigPath scans raw arguments for -config before the full flag
// parse, so the configuration can seed the remaining defaults.
func PeekConfigPath(args []string) string {
	for i, a := range args {
		if a == "-config" || a == "--config" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
	}
	return ""
}

// ParseFlags parses the command line. cfg provides the defaults for
// every tunable the user leaves unset.
func ParseFlags(args []string, cfg *config.Config, output io.Writer) (*Options, error) {
	opts := &Options{}
	fs := flag.NewFlagSet("polysolve", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.Type, "type", "", "cipher type: 0-11 or vig, q1..q4, beau, porta, auto, auto1..auto4")
	fs.StringVar(&opts.CipherFile, "cipher", "", "ciphertext file (first whitespace-delimited token read)")
	fs.StringVar(&opts.BatchFile, "batch", "", "batch file, one ciphertext per line")
	fs.StringVar(&opts.CribFile, "crib", "", "crib mask file, same length as the ciphertext, '_' for unknown")
	fs.StringVar(&opts.NgramFile, "ngramfile", "", "ngram frequency file (GRAM<tab>COUNT per line)")
	fs.IntVar(&opts.NgramSize, "ngramsize", 0, "gram length of the ngram file")
	fs.StringVar(&opts.DictionaryFile, "dictionary", cfg.Dictionary.Path, "dictionary for the word-count report")

	fs.IntVar(&opts.KeywordLen, "keywordlen", cfg.Keyword.DefaultLen, "keyword prefix length for both alphabets (0 to scan)")
	fs.IntVar(&opts.PTKeywordLen, "plaintextkeywordlen", 0, "plaintext keyword prefix length (overrides -keywordlen)")
	fs.IntVar(&opts.CTKeywordLen, "ciphertextkeywordlen", 0, "ciphertext keyword prefix length (overrides -keywordlen)")
	fs.IntVar(&opts.MaxKeywordLen, "maxkeywordlen", cfg.Keyword.MaxLen, "upper bound of the keyword prefix scan")

	fs.IntVar(&opts.CyclewordLen, "cyclewordlen", 0, "fixed cycleword length (0 to estimate)")
	fs.IntVar(&opts.MaxCyclewordLen, "maxcyclewordlen", cfg.Period.MaxCyclewordLen, "upper bound of the cycleword length scan")

	fs.StringVar(&opts.PTKeyword, "plaintextkeyword", "", "fix the plaintext keyed alphabet to this keyword")
	fs.StringVar(&opts.CTKeyword, "ciphertextkeyword", "", "fix the ciphertext keyed alphabet to this keyword")

	fs.IntVar(&opts.HillClimbs, "nhillclimbs", cfg.Search.HillClimbs, "inner hill-climb iterations per restart")
	fs.IntVar(&opts.Restarts, "nrestarts", cfg.Search.Restarts, "shotgun restarts per (period, keyword length) cell")
	fs.Float64Var(&opts.BacktrackProb, "backtrackprob", cfg.Search.BacktrackProb, "probability a restart backtracks to the best state")
	fs.Float64Var(&opts.KeywordPermProb, "keywordpermprob", cfg.Search.KeywordPermProb, "probability a mutation perturbs the keyword")
	fs.Float64Var(&opts.SlipProb, "slipprob", cfg.Search.SlipProb, "probability of accepting a worse state")

	fs.Float64Var(&opts.SigmaThreshold, "nsigmathreshold", cfg.Period.SigmaThreshold, "z-score threshold of the period filter")
	fs.Float64Var(&opts.IoCThreshold, "iocthreshold", cfg.Period.IoCThreshold, "raw IoC threshold of the period filter")

	fs.Float64Var(&opts.WeightNgram, "weightngram", cfg.Weights.Ngram, "fitness weight of the ngram score")
	fs.Float64Var(&opts.WeightCrib, "weightcrib", cfg.Weights.Crib, "fitness weight of the crib match ratio")
	fs.Float64Var(&opts.WeightIoC, "weightioc", cfg.Weights.IoC, "fitness weight of the IoC distance score")
	fs.Float64Var(&opts.WeightEntropy, "weightentropy", cfg.Weights.Entropy, "fitness weight of the entropy distance score")

	fs.BoolVar(&opts.OptimalCycle, "optimalcycle", cfg.Search.OptimalCycleword, "derive the cycleword per column instead of mutating it")
	fs.BoolVar(&opts.StochasticCycle, "stochasticcycle", false, "mutate the cycleword stochastically (disables -optimalcycle)")
	fs.BoolVar(&opts.Variant, "variant", false, "reciprocal direction of the tableau")
	fs.BoolVar(&opts.SameKey, "samekey", false, "force the plaintext and ciphertext alphabets to share one keyword")
	fs.BoolVar(&opts.Verbose, "verbose", false, "print search progress")
	fs.BoolVar(&opts.Bench, "bench", false, "run the fitness benchmark instead of solving")

	fs.StringVar(&opts.Seed, "seed", cfg.Search.Seed, "seed phrase for a reproducible search (empty for random)")
	fs.StringVar(&opts.ConfigFile, "config", "", "configuration file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opts.StochasticCycle {
		opts.OptimalCycle = false
	}
	return opts, nil
}

// Validate checks the options that have no sensible fallback.
func (o *Options) Validate() error {
	if o.Type == "" {
		return fmt.Errorf("-type is required")
	}
	if o.CipherFile == "" && o.BatchFile == "" && !o.Bench {
		return fmt.Errorf("one of -cipher or -batch is required")
	}
	if o.NgramFile == "" {
		return fmt.Errorf("-ngramfile is required")
	}
	if o.NgramSize < 1 {
		return fmt.Errorf("-ngramsize is required")
	}
	return nil
}

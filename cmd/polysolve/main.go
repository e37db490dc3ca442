package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/benchmark"
	"github.com/abdorrahmani/polysolve/internal/cipher"
	"github.com/abdorrahmani/polysolve/internal/cli"
	"github.com/abdorrahmani/polysolve/internal/config"
	"github.com/abdorrahmani/polysolve/internal/corpus"
	"github.com/abdorrahmani/polysolve/internal/crib"
	"github.com/abdorrahmani/polysolve/internal/ngram"
	"github.com/abdorrahmani/polysolve/internal/prng"
	"github.com/abdorrahmani/polysolve/internal/solver"
)

func main() {
	display := cli.NewConsoleDisplay()
	if err := run(os.Args[1:], display); err != nil {
		display.ShowError(err)
		os.Exit(1)
	}
}

func run(args []string, display *cli.ConsoleDisplay) error {
	cfg, err := config.LoadConfig(cli.PeekConfigPath(args))
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	opts, err := cli.ParseFlags(args, cfg, os.Stderr)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	typ, err := cipher.ParseType(opts.Type)
	if err != nil {
		return err
	}

	model, err := ngram.Load(opts.NgramFile, opts.NgramSize)
	if err != nil {
		return err
	}

	rng, err := prng.New(opts.Seed)
	if err != nil {
		return err
	}

	display.ShowWelcome(typ.String())

	if opts.Bench {
		var ct []byte
		if opts.CipherFile != "" {
			if ct, err = corpus.LoadCiphertext(opts.CipherFile); err != nil {
				return err
			}
		} else {
			ct = make([]byte, 200)
			for i := range ct {
				ct[i] = byte(rng.Intn(alphabet.Size))
			}
		}
		_, steps, err := benchmark.RunFitnessBenchmark(ct, model, rng, opts.HillClimbs)
		if err != nil {
			return err
		}
		display.Steps(steps)
		return nil
	}

	dict := loadDictionary(opts, cfg)

	var ciphertexts [][]byte
	if opts.BatchFile != "" {
		if ciphertexts, err = corpus.LoadBatch(opts.BatchFile); err != nil {
			return err
		}
	} else {
		ct, err := corpus.LoadCiphertext(opts.CipherFile)
		if err != nil {
			return err
		}
		ciphertexts = [][]byte{ct}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for i, ct := range ciphertexts {
		if len(ciphertexts) > 1 {
			display.ShowProgress("solving ciphertext %d of %d (%d letters)", i+1, len(ciphertexts), len(ct))
		}
		if err := solveOne(typ, ct, opts, model, rng, display, dict, interrupt); err != nil {
			return err
		}
	}
	return nil
}

func solveOne(typ cipher.Type, ct []byte, opts *cli.Options, model *ngram.Model, rng *rand.Rand, display *cli.ConsoleDisplay, dict *corpus.Dictionary, interrupt <-chan os.Signal) error {
	var cribs *crib.Crib
	if opts.CribFile != "" {
		mask, err := corpus.LoadCribMask(opts.CribFile)
		if err != nil {
			return err
		}
		if cribs, err = crib.Parse(mask, len(ct)); err != nil {
			return err
		}
	}

	search := &solver.Search{
		Type:       typ,
		Variant:    opts.Variant,
		Ciphertext: ct,
		Cribs:      cribs,
		Model:      model,
		Rng:        rng,
		Weights: solver.Weights{
			Ngram:   opts.WeightNgram,
			Crib:    opts.WeightCrib,
			IoC:     opts.WeightIoC,
			Entropy: opts.WeightEntropy,
		},
		CyclewordLen:    opts.CyclewordLen,
		MaxCyclewordLen: opts.MaxCyclewordLen,
		SigmaThreshold:  opts.SigmaThreshold,
		IoCThreshold:    opts.IoCThreshold,
		MaxKeywordLen:   opts.MaxKeywordLen,
	}
	search.Climb = solver.Options{
		HillClimbs:       opts.HillClimbs,
		Restarts:         opts.Restarts,
		BacktrackProb:    opts.BacktrackProb,
		KeywordPermProb:  opts.KeywordPermProb,
		SlipProb:         opts.SlipProb,
		OptimalCycleword: opts.OptimalCycle,
		SameKey:          opts.SameKey,
	}

	if err := applyKeywordOptions(search, opts); err != nil {
		return err
	}
	if opts.Verbose {
		search.Verbose = func(format string, args ...interface{}) {
			display.ShowProgress(format, args...)
		}
		search.Climb.Progress = func(restart, iterations int, bestScore float64, plaintext []byte) {
			prefix := plaintext
			if len(prefix) > 40 {
				prefix = prefix[:40]
			}
			display.ShowProgress("restart %d (%d iterations): score %.6f  %s",
				restart, iterations, bestScore, alphabet.ToText(prefix))
		}
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-interrupt:
			search.Stop.Store(true)
		case <-done:
		}
	}()
	defer close(done)

	start := time.Now()
	result, err := search.Run()
	if err != nil {
		return err
	}
	display.ShowResult(result, time.Since(start), dict)
	return nil
}

// applyKeywordOptions resolves the keyword prefix lengths and the
// user-fixed alphabets. A fixed keyword pins both the alphabet and its
// prefix length.
func applyKeywordOptions(search *solver.Search, opts *cli.Options) error {
	ptLen := opts.PTKeywordLen
	if ptLen == 0 {
		ptLen = opts.KeywordLen
	}
	ctLen := opts.CTKeywordLen
	if ctLen == 0 {
		ctLen = opts.KeywordLen
	}
	search.PTKeywordLen = ptLen
	search.CTKeywordLen = ctLen

	if opts.PTKeyword != "" {
		a, prefix, err := alphabet.FromKeyword(opts.PTKeyword)
		if err != nil {
			return fmt.Errorf("-plaintextkeyword: %w", err)
		}
		search.Climb.FixedPT = &a
		search.PTKeywordLen = prefix
	}
	if opts.CTKeyword != "" {
		a, prefix, err := alphabet.FromKeyword(opts.CTKeyword)
		if err != nil {
			return fmt.Errorf("-ciphertextkeyword: %w", err)
		}
		search.Climb.FixedCT = &a
		search.CTKeywordLen = prefix
	}
	return nil
}

// loadDictionary loads the word list for the report. A missing file at
// the default path is not an error; the report is simply skipped.
func loadDictionary(opts *cli.Options, cfg *config.Config) *corpus.Dictionary {
	if opts.DictionaryFile == "" {
		return nil
	}
	dict, err := corpus.LoadDictionary(opts.DictionaryFile)
	if err != nil {
		if opts.DictionaryFile != cfg.Dictionary.Path {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	}
	return dict
}

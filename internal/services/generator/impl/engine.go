package impl

import (
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kestfor/WordPerms/internal/services/generator"
	"github.com/kestfor/WordPerms/pkg/set"
	"golang.org/x/sync/errgroup"
)

type engine struct {
	maxLength      int
	capitalization generator.Capitalization
	workers        int
	progressPeriod time.Duration
}

var _ generator.Service = (*engine)(nil)

func NewEngine(config *generator.Config) *engine {
	return &engine{
		maxLength:      config.MaxLength,
		capitalization: config.Capitalization,
		workers:        max(config.Workers, 1),
		progressPeriod: config.ProgressPeriod,
	}
}

// Generate runs an engine with one worker per available CPU.
func Generate(words []string, maxLength int, capitalization generator.Capitalization) set.Set[string] {
	return NewEngine(&generator.Config{
		MaxLength:      maxLength,
		Capitalization: capitalization,
		Workers:        runtime.GOMAXPROCS(0),
	}).Generate(words)
}

// Generate fans combinations out to the workers. Every worker folds the local
// set of each combination into its own partial set, and the partial sets are
// merged once all combinations are consumed.
func (e *engine) Generate(words []string) set.Set[string] {
	start := time.Now()

	space := NewSearchSpace(len(words), e.maxLength, e.capitalization)
	maxLength := space.MaxLength()
	if maxLength == 0 {
		resultSize.Set(0)
		return set.New[string]()
	}

	slog.Debug("generating permutations",
		slog.Int("words_count", len(words)),
		slog.Int("max_length", maxLength),
		slog.String("capitalization", e.capitalization.String()),
		slog.Int("workers", e.workers),
		slog.Uint64("combinations_total", space.TotalCombinations()),
	)

	// variants depend only on the word, so every combination shares them
	variants := make([][]string, len(words))
	for i, word := range words {
		variants[i] = generator.Expand(word, e.capitalization)
	}

	var done atomic.Uint64
	stopProgress := e.reportProgress(&done, space)
	defer stopProgress()

	combinations := make(chan []int, e.workers*2)
	partials := make([]set.Set[string], e.workers)

	var g errgroup.Group
	for w := range e.workers {
		g.Go(func() error {
			partial := set.New[string]()
			for combination := range combinations {
				local, candidates := permuteCombination(variants, combination)
				partial.Extend(local)

				candidatesGenerated.Add(float64(candidates))
				combinationsProcessed.Inc()
				done.Add(1)
			}
			partials[w] = partial
			return nil
		})
	}

	for k := 1; k <= maxLength; k++ {
		slog.Debug("enumerating combinations",
			slog.Int("length", k),
			slog.Uint64("combinations_count", space.Combinations(k)),
		)
		for combination := range Combinations(len(words), k) {
			combinations <- slices.Clone(combination)
		}
	}
	close(combinations)

	// workers never fail
	_ = g.Wait()

	result := set.Merge(partials...)

	elapsed := time.Since(start)
	generateDuration.Observe(elapsed.Seconds())
	resultSize.Set(float64(result.Size()))

	slog.Debug("permutations generated",
		slog.Int("results_count", result.Size()),
		slog.Duration("elapsed", elapsed),
	)

	return result
}

// permuteCombination builds the local set of one combination and reports how
// many strings were produced before deduplication.
func permuteCombination(variants [][]string, combination []int) (set.Set[string], int) {
	choices := make([][]string, len(combination))
	for i, wordIndex := range combination {
		choices[i] = variants[wordIndex]
	}

	local := set.New[string]()
	candidates := 0

	for tuple := range CrossProduct(choices) {
		for permutation := range Permutations(tuple) {
			local.Add(strings.Join(permutation, ""))
			candidates++
		}
	}

	return local, candidates
}

// reportProgress logs the done counter against the size of space every
// progress period. stop returns once the reporting goroutine has exited.
func (e *engine) reportProgress(done *atomic.Uint64, space *SearchSpace) (stop func()) {
	if e.progressPeriod <= 0 {
		return func() {}
	}

	total := space.TotalCombinations()
	candidatesMax := space.TotalCandidates()

	ticker := time.NewTicker(e.progressPeriod)
	quit := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				slog.Info("generation progress",
					slog.Uint64("combinations_done", done.Load()),
					slog.Uint64("combinations_total", total),
					slog.Uint64("candidates_max", candidatesMax),
				)
			}
		}
	}()

	return func() {
		close(quit)
		<-stopped
	}
}

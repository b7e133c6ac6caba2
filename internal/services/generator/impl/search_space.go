package impl

import (
	"math"
	"math/big"

	"github.com/kestfor/WordPerms/internal/services/generator"
)

// SearchSpace sizes a generation run before it starts.
type SearchSpace struct {
	words    int
	maxLen   int
	variants int64

	// combinations[k] = C(words, k), combinations[0] = 0
	combinations []*big.Int

	// candidates[k] = C(words, k) * k! * variants^k, counted before deduplication
	candidates []*big.Int
}

func NewSearchSpace(words, maxLen int, policy generator.Capitalization) *SearchSpace {
	maxLen = max(min(maxLen, words), 0)

	s := &SearchSpace{
		words:        words,
		maxLen:       maxLen,
		variants:     int64(policy.VariantCount()),
		combinations: make([]*big.Int, maxLen+1),
		candidates:   make([]*big.Int, maxLen+1),
	}

	s.combinations[0] = big.NewInt(0)
	s.candidates[0] = big.NewInt(0)

	variantsPower := big.NewInt(1)
	for k := 1; k <= maxLen; k++ {
		variantsPower.Mul(variantsPower, big.NewInt(s.variants))

		s.combinations[k] = new(big.Int).Binomial(int64(words), int64(k))

		// ordered selections: words! / (words-k)!
		arrangements := new(big.Int).MulRange(int64(words-k+1), int64(words))
		s.candidates[k] = arrangements.Mul(arrangements, variantsPower)
	}

	return s
}

// MaxLength returns the effective combination length, clamped to the word count.
func (s *SearchSpace) MaxLength() int {
	return s.maxLen
}

// Combinations returns the number of k-combinations, saturating at math.MaxUint64.
func (s *SearchSpace) Combinations(k int) uint64 {
	if k < 1 || k > s.maxLen {
		return 0
	}
	return saturate(s.combinations[k])
}

// TotalCombinations returns the number of work units of the run.
func (s *SearchSpace) TotalCombinations() uint64 {
	return saturate(sum(s.combinations))
}

// TotalCandidates returns the upper bound of the result size, before deduplication.
func (s *SearchSpace) TotalCandidates() uint64 {
	return saturate(sum(s.candidates))
}

func sum(values []*big.Int) *big.Int {
	total := new(big.Int)
	for _, v := range values {
		total.Add(total, v)
	}
	return total
}

func saturate(v *big.Int) uint64 {
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}

package generator

import (
	"fmt"
	"time"

	"github.com/kestfor/WordPerms/pkg/set"
)

type Service interface {
	// Generate returns every distinct concatenation of ordered permutations of
	// word subsets up to the configured length.
	Generate(words []string) set.Set[string]
}

type Config struct {
	MaxLength      int            `yaml:"max_length" env:"MAX_LENGTH"`
	Capitalization Capitalization `yaml:"capitalization" env:"CAPITALIZATION"`
	Workers        int            `yaml:"workers" env:"WORKERS"`
	ProgressPeriod time.Duration  `yaml:"progress_period" env:"PROGRESS_PERIOD"`
}

func (c *Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length must not be negative, got %d", ErrInvalidConfig, c.MaxLength)
	}

	if c.Capitalization.IsUnknown() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownCapitalization, c.Capitalization)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be greater than 0, got %d", ErrInvalidConfig, c.Workers)
	}

	if c.ProgressPeriod < 0 {
		return fmt.Errorf("%w: progress period must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Truncate keeps at most limit results. A negative limit keeps everything.
func Truncate(results []string, limit int) []string {
	if limit < 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}

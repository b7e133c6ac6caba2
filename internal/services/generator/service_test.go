package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			MaxLength:      4,
			Capitalization: CapitalizationAll,
			Workers:        2,
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:   "zero max length is allowed",
			modify: func(c *Config) { c.MaxLength = 0 },
		},
		{
			name:    "negative max length",
			modify:  func(c *Config) { c.MaxLength = -1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown capitalization",
			modify:  func(c *Config) { c.Capitalization = "camel" },
			wantErr: ErrUnknownCapitalization,
		},
		{
			name:    "no workers",
			modify:  func(c *Config) { c.Workers = 0 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative progress period",
			modify:  func(c *Config) { c.ProgressPeriod = -1 },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTruncate(t *testing.T) {
	results := []string{"a", "b", "ab", "ba"}

	tests := []struct {
		name    string
		limit   int
		wantLen int
	}{
		{name: "limit below size", limit: 2, wantLen: 2},
		{name: "limit equal to size", limit: 4, wantLen: 4},
		{name: "limit above size", limit: 10, wantLen: 4},
		{name: "zero limit", limit: 0, wantLen: 0},
		{name: "negative limit keeps all", limit: -1, wantLen: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(results, tt.limit)
			assert.Len(t, got, tt.wantLen)
			assert.Subset(t, results, got)
		})
	}
}

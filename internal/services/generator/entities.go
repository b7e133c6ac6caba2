package generator

import (
	"fmt"
	"strings"
)

const (
	CapitalizationAll   Capitalization = "all"
	CapitalizationNone  Capitalization = "none"
	CapitalizationFirst Capitalization = "first"
	CapitalizationUpper Capitalization = "upper"
)

// Capitalization selects which case variants of every word take part in permutations.
type Capitalization string

// SupportedCapitalizations returns the accepted policy names in help-text order.
func SupportedCapitalizations() []string {
	return []string{
		string(CapitalizationAll),
		string(CapitalizationNone),
		string(CapitalizationFirst),
		string(CapitalizationUpper),
	}
}

func ParseCapitalization(s string) (Capitalization, error) {
	c := Capitalization(strings.ToLower(strings.TrimSpace(s)))
	if c.IsUnknown() {
		return "", fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownCapitalization, s, strings.Join(SupportedCapitalizations(), ", "))
	}
	return c, nil
}

func (c Capitalization) IsUnknown() bool {
	switch c {
	case CapitalizationAll, CapitalizationNone, CapitalizationFirst, CapitalizationUpper:
		return false
	default:
		return true
	}
}

// VariantCount is the number of variants Expand returns for one word.
func (c Capitalization) VariantCount() int {
	if c == CapitalizationAll {
		return 3
	}
	return 1
}

func (c Capitalization) String() string {
	return string(c)
}

// Set implements pflag.Value.
func (c *Capitalization) Set(s string) error {
	parsed, err := ParseCapitalization(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Capitalization) Type() string {
	return "capitalization"
}

func (c Capitalization) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText lets yaml and env decode policy names.
func (c *Capitalization) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

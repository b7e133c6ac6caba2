package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "ascii", word: "hello", want: "Hello"},
		{name: "already capitalized", word: "World", want: "World"},
		{name: "rest unchanged", word: "hELLO", want: "HELLO"},
		{name: "empty", word: "", want: ""},
		{name: "single rune", word: "a", want: "A"},
		{name: "non ascii", word: "élan", want: "Élan"},
		{name: "cyrillic", word: "пароль", want: "Пароль"},
		{name: "digit first", word: "1abc", want: "1abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeFirst(tt.word))
		})
	}
}

func TestToUpper(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "ascii", word: "hello", want: "HELLO"},
		{name: "mixed", word: "HeLLo1", want: "HELLO1"},
		{name: "empty", word: "", want: ""},
		{name: "sharp s expands", word: "straße", want: "STRASSE"},
		{name: "greek", word: "αβγ", want: "ΑΒΓ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUpper(tt.word))
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		policy Capitalization
		want   []string
	}{
		{
			name:   "none",
			word:   "hello",
			policy: CapitalizationNone,
			want:   []string{"hello"},
		},
		{
			name:   "first",
			word:   "hello",
			policy: CapitalizationFirst,
			want:   []string{"Hello"},
		},
		{
			name:   "upper",
			word:   "hello",
			policy: CapitalizationUpper,
			want:   []string{"HELLO"},
		},
		{
			name:   "all keeps order",
			word:   "hello",
			policy: CapitalizationAll,
			want:   []string{"hello", "HELLO", "Hello"},
		},
		{
			name:   "all keeps coinciding variants",
			word:   "a",
			policy: CapitalizationAll,
			want:   []string{"a", "A", "A"},
		},
		{
			name:   "all on empty word",
			word:   "",
			policy: CapitalizationAll,
			want:   []string{"", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.word, tt.policy)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.policy.VariantCount())
		})
	}
}

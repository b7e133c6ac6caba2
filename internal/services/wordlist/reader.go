package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type ReaderOptions struct {
	// Trim strips surrounding whitespace from kept lines. Lines are kept verbatim otherwise.
	Trim bool `yaml:"trim" env:"TRIM"`
	// Normalize converts kept lines to Unicode NFC.
	Normalize bool `yaml:"normalize" env:"NORMALIZE"`
}

// ReadFile reads one word per line from path.
func ReadFile(path string, opts ReaderOptions) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	words, err := Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return words, nil
}

// Read returns the non-blank lines of r in input order. Line terminators
// (\n or \r\n) are removed; lines have no length limit. Lines are opaque
// bytes: invalid UTF-8 is kept as is and does not stop reading.
func Read(r io.Reader, opts ReaderOptions) ([]string, error) {
	reader := bufio.NewReader(r)
	words := make([]string, 0)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		if word, ok := parseLine(line, opts); ok {
			words = append(words, word)
		}

		if err != nil {
			return words, nil
		}
	}
}

func parseLine(line string, opts ReaderOptions) (string, bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if strings.TrimSpace(line) == "" {
		return "", false
	}

	if opts.Trim {
		line = strings.TrimSpace(line)
	}

	if opts.Normalize {
		line = norm.NFC.String(line)
	}

	return line, true
}

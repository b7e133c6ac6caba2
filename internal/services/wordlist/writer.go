package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer emits one result per line.
// Close must be called to flush buffered lines and release the file handle.
type Writer struct {
	output *bufio.Writer
	closer io.Closer
}

// NewWriter writes lines to output. If output is nil, os.Stdout is used.
func NewWriter(output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		output: bufio.NewWriter(output),
	}
}

// NewFileWriterOrStdout creates the file at path, or writes to stdout when path is empty.
// Unlike stdout fallbacks elsewhere, a file that cannot be created is an error.
func NewFileWriterOrStdout(path string, stdout io.Writer) (*Writer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewWriter(stdout), nil
	}

	file, err := os.Create(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output: bufio.NewWriter(file),
		closer: file,
	}, nil
}

// WriteLines writes every line followed by a newline.
func (w *Writer) WriteLines(lines []string) error {
	for _, line := range lines {
		if _, err := w.output.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := w.output.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// Close flushes buffered lines and closes the underlying file, if any.
// It's safe to call Close more than once.
func (w *Writer) Close() error {
	flushErr := w.output.Flush()

	var closeErr error
	if w.closer != nil {
		closeErr = w.closer.Close()
		w.closer = nil
	}

	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output: %w", closeErr)
	}
	return nil
}

package runner

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StreamingWriter buffers partial writes into whole lines and emits
// each line with a prefix and style.
type StreamingWriter struct {
	prefix string
	style  lipgloss.Style
	writer io.Writer
	// Buffer for incomplete lines
	buffer []byte
}

// NewStreamingWriter creates a line-oriented prefixing writer.
func NewStreamingWriter(writer io.Writer, prefix string, style lipgloss.Style) *StreamingWriter {
	return &StreamingWriter{
		prefix: prefix,
		style:  style,
		writer: writer,
	}
}

// Write formats and writes output line by line.
func (s *StreamingWriter) Write(p []byte) (n int, err error) {
	s.buffer = append(s.buffer, p...)

	lines := strings.Split(string(s.buffer), "\n")

	// Keep the last incomplete line in the buffer.
	s.buffer = []byte(lines[len(lines)-1])
	lines = lines[:len(lines)-1]

	for _, line := range lines {
		if _, err := s.writer.Write([]byte(s.formatLine(line) + "\n")); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

// Flush writes any remaining buffered content as a final line.
func (s *StreamingWriter) Flush() error {
	if len(s.buffer) == 0 {
		return nil
	}
	line := s.formatLine(string(s.buffer))
	s.buffer = s.buffer[:0]
	_, err := s.writer.Write([]byte(line + "\n"))
	return err
}

func (s *StreamingWriter) formatLine(line string) string {
	return s.style.Render(s.prefix + line)
}

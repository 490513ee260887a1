package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/allisson/coursecatalog/internal/markdown"
)

// RunRenderMarkdown renders markdown read from file, or from streams.Reader
// when file is empty, and writes the sanitized HTML to streams.Writer.
func RunRenderMarkdown(streams IOTuple, file string) error {
	in := streams.Reader
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open markdown file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	source, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}

	_, err = io.WriteString(streams.Writer, string(markdown.Render(string(source))))
	return err
}

// Package textsource resolves document text from a file or an inline value.
package textsource

import (
	"fmt"
	"strings"

	"github.com/spigell/career-coach/internal/extract"
)

// Source describes where a document's text comes from.
type Source struct {
	// Name is used in error messages to give more context about the document.
	Name string
	// Text is an inline value provided via flags or prompts.
	Text string
	// File points to a document file. When set it takes precedence over
	// Text. The file goes through extract.Text, so .txt, .pdf and .docx
	// are all accepted.
	File string
}

// Load returns the resolved document text from the provided source. When
// File is set it takes precedence over Text. The returned text is always
// trimmed. An error is returned when neither File nor Text contain usable
// content.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		content, err := extract.Text(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Text = content
	}

	text := strings.TrimSpace(src.Text)
	if text == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}

		return "", fmt.Errorf("%s is not provided", name)
	}

	return text, nil
}

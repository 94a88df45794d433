// Package extract pulls plain text out of CV and job-listing files.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrUnsupportedFormat reports a file extension outside {.txt,.pdf,.docx}.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrFileNotFound reports a missing input file.
	ErrFileNotFound = errors.New("file not found")
)

// docx content arrives as WordprocessingML; dropping the tags leaves the
// document text.
var markupTag = regexp.MustCompile(`<[^>]+>`)

// Text reads a document and returns its plain text. The extension decides
// the parser; unsupported extensions fail before the file is touched.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".pdf", ".docx":
	default:
		return "", fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%q: %w", path, ErrFileNotFound)
		}

		return "", err
	}

	switch ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return string(data), nil
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with exotic font encodings are skipped rather than
			// failing the whole document.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer doc.Close()

	return markupTag.ReplaceAllString(doc.Editable().GetContent(), " "), nil
}

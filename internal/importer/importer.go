// Package importer converts documents in other formats into deck markdown.
package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Importer converts raw document bytes into a Document.
type Importer interface {
	Import(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions that can be imported.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the importer for a filename.
func ForFile(filename string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownImporter{}, nil
	case ".txt":
		return &TextImporter{}, nil
	case ".csv":
		return &CSVImporter{}, nil
	case ".html", ".htm":
		return &HTMLImporter{}, nil
	case ".pdf":
		return &PDFImporter{}, nil
	case ".docx":
		return &DOCXImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Convert imports r and renders it as deck markdown with at most maxWords
// words per slide.
func Convert(r io.Reader, filename string, maxWords int) (string, error) {
	imp, err := ForFile(filename)
	if err != nil {
		return "", err
	}
	doc, err := imp.Import(r, filename)
	if err != nil {
		return "", fmt.Errorf("import %s: %w", filepath.Base(filename), err)
	}
	return Render(doc, maxWords), nil
}

func baseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

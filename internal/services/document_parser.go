package services

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported resume file types.
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypeTXT  = "txt"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// DocumentParser extracts plain text from a stored resume.
type DocumentParser interface {
	ExtractText(filePath, fileType string) (string, error)
}

type documentParser struct {
	cleaner *TextCleaner
}

func NewDocumentParser(cleaner *TextCleaner) DocumentParser {
	return &documentParser{cleaner: cleaner}
}

func (p *documentParser) ExtractText(filePath, fileType string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	var (
		text string
		err  error
	)
	switch strings.ToLower(fileType) {
	case FileTypePDF:
		text, err = p.extractPDF(filePath)
	case FileTypeDOCX:
		text, err = p.extractDOCX(filePath)
	case FileTypeTXT:
		text, err = p.extractTXT(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text content found in %s", fileType)
	}
	return text, nil
}

func (p *documentParser) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable pages are skipped.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func (p *documentParser) extractDOCX(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	return p.cleaner.StripMarkup(r.Editable().GetContent()), nil
}

func (p *documentParser) extractTXT(filePath string) (string, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(raw), nil
}

package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextWithMetaData(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	content, err := p.ExtractTextWithMetaData(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(data []byte) (content *PDFContent, err error) {
	// The pdf package panics on some malformed inputs instead of returning
	// an error.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("%w: unreadable PDF: %v", ErrExtraction, r)
		}
	}()

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrExtraction)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %v", ErrExtraction, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or broken pages yield nothing; keep going
			log.Printf("⚠️  No text extracted from page %d: %v\n", pageIndex, err)
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text content found in PDF", ErrExtraction)
	}

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}

// CleanText collapses blank-line runs and trims surrounding whitespace.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

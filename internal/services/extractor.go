package services

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// AllowedExtension reports whether a declared file extension is accepted for
// upload. Extensions must be lowercased and include the leading dot.
func AllowedExtension(ext string) bool {
	return ext == ".pdf" || ext == ".docx"
}

// TextExtractor converts a declared-format document on disk into plain text.
// Library failures degrade to empty text rather than propagating: the caller's
// minimum-length check is the single signal that extraction failed. An error
// is returned only for an extension this extractor does not support.
type TextExtractor interface {
	ExtractText(filePath, ext string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

func (e *textExtractor) ExtractText(filePath, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return e.extractPDF(filePath), nil
	case ".docx":
		return e.extractDocx(filePath), nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}

func (e *textExtractor) extractPDF(filePath string) (text string) {
	// The pdf library panics on some malformed inputs; a broken upload must
	// yield empty text, not kill the request.
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Printf("⚠️ PDF extraction panicked: %v\n", rec)
			text = ""
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		fmt.Printf("⚠️ Failed to open PDF: %v\n", err)
		return ""
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
			// A page that fails to yield text contributes nothing;
			// the remaining pages are still extracted in order.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String()
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTextRun      = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

func (e *textExtractor) extractDocx(filePath string) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Printf("⚠️ DOCX extraction panicked: %v\n", rec)
			text = ""
		}
	}()

	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		fmt.Printf("⚠️ Failed to open DOCX: %v\n", err)
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// GetContent returns the raw document XML. Keep the text runs, turn
	// paragraph boundaries into line breaks, drop everything else. Text runs
	// carry escaped character data, so entities like &amp; still need
	// decoding to recover the original text.
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTextRun.ReplaceAllString(content, "$1")
	content = docxTag.ReplaceAllString(content, "")

	return html.UnescapeString(content)
}

// CleanText normalizes extracted text: trims each line and collapses blank
// lines so the prompt carries content, not layout artifacts.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// Package extract converts uploaded resume documents into plain text.
package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Accepted declared content types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// UnsupportedFormatError indicates the declared content type is not accepted.
// It is raised before any document byte is read.
type UnsupportedFormatError struct {
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (expected PDF or DOCX)", e.ContentType)
}

// Text extracts the plain text of a resume document. The declared content
// type is checked first; anything but PDF or DOCX fails with
// UnsupportedFormatError. A malformed or corrupt document yields empty text
// rather than an error, and the caller decides how to surface that.
func Text(data []byte, contentType string) (string, error) {
	switch contentType {
	case ContentTypePDF:
		return pdfText(data), nil
	case ContentTypeDOCX:
		return docxText(data), nil
	default:
		return "", &UnsupportedFormatError{ContentType: contentType}
	}
}

// pdfText concatenates per-page text in page order. Pages that yield no text
// contribute nothing rather than aborting the whole document.
func pdfText(data []byte) (text string) {
	// The pdf library panics on some malformed files; treat that the same
	// as any other unreadable document.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String()
}

func docxText(data []byte) string {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer reader.Close()

	return paragraphText(reader.Editable().GetContent())
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// paragraphText flattens WordprocessingML markup into plain text, one
// paragraph per line, preserving document order.
func paragraphText(content string) string {
	paragraphs := strings.Split(content, "</w:p>")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		text := xmlTagPattern.ReplaceAllString(p, "")
		lines = append(lines, html.UnescapeString(text))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

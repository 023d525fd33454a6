package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

const (
	MessagePDFError        = "Error extracting text from PDF."
	MessageDOCXUnsupported = "DOCX files are not fully supported yet. Please convert to PDF or paste text directly."
	MessageUnsupportedType = "Unsupported file type. Please use PDF, TXT, or paste text directly."
)

// TextExtractor turns uploaded resume files into plain text.
type TextExtractor interface {
	// Extract never fails: unreadable or unsupported input is reported
	// through a user-facing message in place of the text.
	Extract(data []byte, filename string) string
	ExtractUpload(file *multipart.FileHeader) (string, error)
}

type textExtractor struct {
	log *logrus.Logger
}

func NewTextExtractor(log *logrus.Logger) TextExtractor {
	return &textExtractor{log: log}
}

// Extract implements TextExtractor.
func (e *textExtractor) Extract(data []byte, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			e.log.WithFields(logrus.Fields{
				"filename": filename,
				"error":    err,
			}).Warn("Failed to extract text from PDF")
			return MessagePDFError
		}
		return text
	case ".txt", ".rtf":
		return strings.ToValidUTF8(string(data), "")
	case ".docx":
		return MessageDOCXUnsupported
	default:
		return MessageUnsupportedType
	}
}

// ExtractUpload implements TextExtractor.
func (e *textExtractor) ExtractUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"filename": file.Filename,
		"size":     len(data),
	}).Debug("Received file")

	return e.Extract(data, file.Filename), nil
}

// extractPDFText joins the plain text of every page, each followed by a
// newline. The pdf package panics on some malformed inputs, so panics are
// turned into errors here.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
			}
			textBuilder.WriteString(pageText)
		}
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhvanil3103/ats-resume/internal/logger"
)

// buildPDF writes a one-page PDF whose page shows text in Helvetica.
func buildPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func fileHeader(t *testing.T, field, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

func TestExtract_FixedMessages(t *testing.T) {
	extractor := NewTextExtractor(logger.Discard())

	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
	}{
		{name: "docx", filename: "resume.docx", data: []byte("PK\x03\x04 anything"), want: MessageDOCXUnsupported},
		{name: "docx upper case", filename: "RESUME.DOCX", data: nil, want: MessageDOCXUnsupported},
		{name: "image", filename: "photo.png", data: []byte{0x89, 'P', 'N', 'G'}, want: MessageUnsupportedType},
		{name: "doc", filename: "resume.doc", data: []byte("x"), want: MessageUnsupportedType},
		{name: "no extension", filename: "resume", data: []byte("plain"), want: MessageUnsupportedType},
		{name: "garbage pdf", filename: "resume.pdf", data: []byte("definitely not a pdf"), want: MessagePDFError},
		{name: "empty pdf", filename: "resume.pdf", data: []byte{}, want: MessagePDFError},
		{name: "truncated pdf", filename: "resume.PDF", data: []byte("%PDF-1.4\n1 0 obj\n<<"), want: MessagePDFError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.data, tt.filename))
		})
	}
}

func TestExtract_PlainText(t *testing.T) {
	extractor := NewTextExtractor(logger.Discard())

	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
	}{
		{name: "txt", filename: "resume.txt", data: []byte("Jane Doe\nGo developer"), want: "Jane Doe\nGo developer"},
		{name: "rtf", filename: "resume.rtf", data: []byte(`{\rtf1 Jane}`), want: `{\rtf1 Jane}`},
		{name: "utf-8 kept", filename: "cv.TXT", data: []byte("José González"), want: "José González"},
		{name: "invalid bytes dropped", filename: "cv.txt", data: []byte("Start \xff\xfe End"), want: "Start  End"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.data, tt.filename))
		})
	}
}

func TestExtract_PDF(t *testing.T) {
	extractor := NewTextExtractor(logger.Discard())

	text := extractor.Extract(buildPDF("Hello Resume"), "resume.pdf")

	assert.Contains(t, text, "Hello Resume")
	assert.Equal(t, byte('\n'), text[len(text)-1])
}

func TestExtractUpload(t *testing.T) {
	extractor := NewTextExtractor(logger.Discard())

	header := fileHeader(t, "file", "resume.txt", []byte("Senior Engineer"))
	text, err := extractor.ExtractUpload(header)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", text)

	header = fileHeader(t, "file", "resume.docx", []byte("binary"))
	text, err = extractor.ExtractUpload(header)
	require.NoError(t, err)
	assert.Equal(t, MessageDOCXUnsupported, text)
}

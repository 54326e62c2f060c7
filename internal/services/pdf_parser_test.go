package services

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextMultiPage(t *testing.T) {
	parser := NewPDFParserService()

	text, err := parser.ExtractText(buildTwoPagePDF(t, "Page one text", "Page two text"))
	require.NoError(t, err)

	idxOne := strings.Index(text, "Page one text")
	idxTwo := strings.Index(text, "Page two text")
	require.NotEqual(t, -1, idxOne, "first page text missing: %q", text)
	require.NotEqual(t, -1, idxTwo, "second page text missing: %q", text)

	// Pages come out in page order.
	assert.Less(t, idxOne, idxTwo)

	// A blank line separates the pages.
	assert.Contains(t, text[idxOne+len("Page one text"):idxTwo], "\n\n")

	// Only the outer whitespace of the joined text is trimmed.
	assert.True(t, strings.HasPrefix(text, "Page one text"))
	assert.True(t, strings.HasSuffix(text, "Page two text"))
	assert.Equal(t, strings.TrimSpace(text), text)
}

func TestExtractTextRejectsEmptyData(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText(nil)
	assert.Error(t, err)
}

func TestExtractTextRejectsNonPDFBytes(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText([]byte("this is just plain text, not a pdf"))
	assert.Error(t, err)
}

// buildTwoPagePDF assembles a minimal uncompressed two-page PDF with the
// given page texts and a correct xref table.
func buildTwoPagePDF(t *testing.T, pageOne, pageTwo string) []byte {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 8)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	contentStream := func(text string) string {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 6 0 R >>")
	writeObj(4, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 7 0 R >>")
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	writeObj(6, contentStream(pageOne))
	writeObj(7, contentStream(pageTwo))

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 8\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 8 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}

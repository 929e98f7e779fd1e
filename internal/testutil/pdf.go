// Package testutil builds tiny in-memory PDF fixtures so tests never depend
// on binary files in the tree.
package testutil

import (
	"bytes"
	"fmt"
	"strings"
)

// MinimalPDF returns a valid single-font PDF with one page per entry in
// pageTexts. An empty entry produces a page with no text content, which is
// how an image-only page looks to a text extractor.
func MinimalPDF(pageTexts ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	// Offsets are recorded as objects are written; index 0 is the free head.
	offsets := []int{0}
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	// Objects: 1 catalog, 2 page tree, 3 font, then (page, content) pairs.
	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pageTexts {
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))

		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escapePDFString(text))
		}
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets), xrefStart)

	return buf.Bytes()
}

func escapePDFString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	return strings.ReplaceAll(s, ")", `\)`)
}

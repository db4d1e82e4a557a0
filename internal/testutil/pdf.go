// Package testutil provides helpers shared by tests.
package testutil

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDF fabricates a minimal but well-formed PDF with the given number of
// pages. Pages are empty (no content streams); that is enough for page
// level operations and keeps fixtures out of the repo.
func PDF(t *testing.T, pages int) []byte {
	t.Helper()
	if pages < 1 {
		t.Fatalf("PDF: page count must be positive, got %d", pages)
	}

	var buf bytes.Buffer
	offsets := make([]int, 0, pages+3) // byte offset of each numbered object

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	// Object 1: catalog, object 2: page tree, objects 3..: pages.
	writeObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := ""
	for i := 0; i < pages; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+i)
	}
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [ %s] /Count %d >>", kids, pages))

	for i := 0; i < pages; i++ {
		writeObj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	return buf.Bytes()
}

// PageCount reads the page count of an in-memory PDF, failing the test
// on error.
func PageCount(t *testing.T, data []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	return n
}

// Package render - validate.go sanity-checks generated PDF bytes.
package render

import (
	"bytes"
	"fmt"
)

// minPDFSize rejects obviously truncated output. A one-page PDF from the
// print engine is never smaller than this.
const minPDFSize = 1024

var (
	pdfMagic = []byte("%PDF-")
	pdfEOF   = []byte("%%EOF")
)

// CheckPDF verifies the bytes look like a complete PDF document.
func CheckPDF(data []byte) error {
	if len(data) == 0 {
		return &InvalidPDFError{Message: "empty output"}
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return &InvalidPDFError{Message: "missing PDF header"}
	}
	if len(data) < minPDFSize {
		return &InvalidPDFError{Message: fmt.Sprintf("output too small (%d bytes)", len(data))}
	}
	// The EOF marker sits at or very near the end of a well-formed file.
	tail := data
	if len(tail) > 1024 {
		tail = tail[len(tail)-1024:]
	}
	if !bytes.Contains(tail, pdfEOF) {
		return &InvalidPDFError{Message: "missing EOF marker, output may be truncated"}
	}
	return nil
}

// CountPages counts page objects in the PDF. It is a heuristic based on the
// document catalog, good enough for reporting and one-page warnings.
func CountPages(data []byte) int {
	count := bytes.Count(data, []byte("/Type /Page"))
	count -= bytes.Count(data, []byte("/Type /Pages"))
	if count < 0 {
		return 0
	}
	return count
}

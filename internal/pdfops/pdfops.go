// Package pdfops performs page-level PDF operations on in-memory
// documents. All structural work is delegated to pdfcpu; this package
// only resolves which pages appear in the output and in what order.
package pdfops

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdftoolbox/pdftoolbox/internal/pagespec"
)

// ErrInvalidPDF marks input that pdfcpu could not read as a PDF.
var ErrInvalidPDF = errors.New("not a valid PDF")

// pdfMagic is the required file header per the PDF spec.
var pdfMagic = []byte("%PDF-")

// IsPDF reports whether data starts with the PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= len(pdfMagic) && bytes.Equal(data[:len(pdfMagic)], pdfMagic)
}

// PageCount returns the number of pages in the document.
func PageCount(rs io.ReadSeeker) (int, error) {
	count, err := api.PageCount(rs, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return count, nil
}

// Merge concatenates the given documents, in order, into a single PDF.
func Merge(docs []io.ReadSeeker) ([]byte, error) {
	if len(docs) == 0 {
		return nil, errors.New("no files provided for merging")
	}

	var out bytes.Buffer
	conf := model.NewDefaultConfiguration()
	if err := api.MergeRaw(docs, &out, false, conf); err != nil {
		return nil, fmt.Errorf("merge failed: %w", err)
	}
	return out.Bytes(), nil
}

// DeletePages removes the pages named by spec and returns the resulting
// document. A *pagespec.Error is returned unwrapped so callers can
// classify it as user input breakage.
func DeletePages(rs io.ReadSeeker, spec string) ([]byte, error) {
	return assemble(rs, spec, pagespec.Delete)
}

// ExtractPages returns a new document containing only the pages named by
// spec, in ascending order.
func ExtractPages(rs io.ReadSeeker, spec string) ([]byte, error) {
	return assemble(rs, spec, pagespec.Extract)
}

// assemble resolves the keep-list for spec and builds the output
// document from those pages.
func assemble(rs io.ReadSeeker, spec string, mode pagespec.Mode) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	keep, err := pagespec.Keep(spec, ctx.PageCount, mode)
	if err != nil {
		return nil, err
	}

	outCtx, err := pdfcpu.ExtractPages(ctx, keep, false)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble pages: %w", err)
	}

	var out bytes.Buffer
	if err := api.WriteContext(outCtx, &out); err != nil {
		return nil, fmt.Errorf("failed to write output PDF: %w", err)
	}
	return out.Bytes(), nil
}

package pdfops

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\w\s\-.]`)

// SanitizeFilename strips path components and characters outside
// [\w\s-.] from an upload filename so it is safe to echo back in a
// Content-Disposition header. Always returns a name ending in .pdf.
func SanitizeFilename(name string) string {
	// Drop any path prefix, whichever separator the client used.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, ". ")

	if name == "" {
		name = "document.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// OutputFilename derives the download filename for an operation result,
// e.g. OutputFilename("scan.pdf", "-merged") -> "scan-merged.pdf".
func OutputFilename(original, suffix string) string {
	base := SanitizeFilename(original)
	stem := base[:len(base)-len(".pdf")]
	return stem + suffix + ".pdf"
}

package endpoints

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/pdftoolbox/pdftoolbox/internal/pagespec"
	"github.com/pdftoolbox/pdftoolbox/internal/pdfops"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// maxFormMemory is how much of a multipart body is held in memory before
// net/http spills to disk.
const maxFormMemory = 32 << 20

// uploadError carries the HTTP status for a rejected upload.
type uploadError struct {
	status int
	msg    string
}

func (e *uploadError) Error() string { return e.msg }

// readUpload reads one multipart file and validates it as a PDF upload:
// non-empty, within the configured size cap, and carrying the PDF magic
// bytes. The MIME type sent by the client is not trusted either way.
func readUpload(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if fh.Filename == "" {
		return nil, &uploadError{http.StatusBadRequest, "All files must have a filename"}
	}
	if fh.Size > maxBytes {
		return nil, &uploadError{
			http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size is %s", maxSizeText(maxBytes)),
		}
	}

	src, err := fh.Open()
	if err != nil {
		return nil, &uploadError{http.StatusBadRequest, "failed to read uploaded file"}
	}
	defer src.Close()

	data := make([]byte, 0, fh.Size)
	buf := make([]byte, 64<<10)
	for {
		n, err := src.Read(buf)
		data = append(data, buf[:n]...)
		if int64(len(data)) > maxBytes {
			return nil, &uploadError{
				http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File too large. Maximum size is %s", maxSizeText(maxBytes)),
			}
		}
		if err != nil {
			break
		}
	}

	if len(data) == 0 {
		return nil, &uploadError{http.StatusBadRequest, "Uploaded file is empty"}
	}
	if !pdfops.IsPDF(data) {
		return nil, &uploadError{http.StatusBadRequest, "File is not a valid PDF (missing PDF header)"}
	}
	return data, nil
}

// writeOpError maps a validation or operation failure to a response.
// Page specification errors are the user's to fix (400) and surface
// verbatim; engine failures are 422; anything else is a server fault.
func writeOpError(w http.ResponseWriter, r *http.Request, err error) {
	var upErr *uploadError
	if errors.As(err, &upErr) {
		writeError(w, upErr.status, upErr.msg)
		return
	}

	var specErr *pagespec.Error
	if errors.As(err, &specErr) {
		writeError(w, http.StatusBadRequest, specErr.Error())
		return
	}

	if errors.Is(err, pdfops.ErrInvalidPDF) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Error("pdf operation failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

// maxSizeText renders a size cap for user-facing messages. Caps below
// a mebibyte are printed in bytes so a small configured cap never reads
// as "0 MB".
func maxSizeText(maxBytes int64) string {
	if maxBytes >= 1<<20 {
		return fmt.Sprintf("%d MB", maxBytes/(1<<20))
	}
	return fmt.Sprintf("%d bytes", maxBytes)
}

// servePDF streams a finished document back as a download attachment.
func servePDF(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// uploadLimits reads the active upload bounds from the request context.
func uploadLimits(r *http.Request) (maxBytes int64, maxMergeFiles int) {
	maxBytes = 100 << 20
	maxMergeFiles = 20
	if cfg := svcctx.ConfigFrom(r.Context()); cfg != nil {
		if cfg.Uploads.MaxFileBytes > 0 {
			maxBytes = cfg.Uploads.MaxFileBytes
		}
		if cfg.Uploads.MaxMergeFiles > 0 {
			maxMergeFiles = cfg.Uploads.MaxMergeFiles
		}
	}
	return maxBytes, maxMergeFiles
}

package endpoints

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdftoolbox/pdftoolbox/internal/pagespec"
	"github.com/pdftoolbox/pdftoolbox/internal/pdfops"
	"github.com/pdftoolbox/pdftoolbox/internal/testutil"
)

// formFile builds a *multipart.FileHeader the way net/http would.
func formFile(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(data)
	mw.Close()

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestReadUpload(t *testing.T) {
	doc := testutil.PDF(t, 2)

	data, err := readUpload(formFile(t, "doc.pdf", doc), 1<<20)
	if err != nil {
		t.Fatalf("readUpload: %v", err)
	}
	if !bytes.Equal(data, doc) {
		t.Error("readUpload returned different bytes than uploaded")
	}
}

func TestReadUpload_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		data       []byte
		maxBytes   int64
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing filename",
			filename:   "",
			data:       []byte("%PDF-1.4 stub"),
			maxBytes:   1 << 20,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All files must have a filename",
		},
		{
			name:       "empty file",
			filename:   "doc.pdf",
			data:       nil,
			maxBytes:   1 << 20,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Uploaded file is empty",
		},
		{
			name:       "not a pdf",
			filename:   "doc.pdf",
			data:       []byte("plain text pretending to be a pdf"),
			maxBytes:   1 << 20,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "File is not a valid PDF (missing PDF header)",
		},
		{
			name:       "over size cap",
			filename:   "doc.pdf",
			data:       append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 2048)...),
			maxBytes:   1024,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "File too large. Maximum size is 1024 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ReadForm treats a part without a filename as a plain form
			// value, so the empty-filename header is built directly.
			var fh *multipart.FileHeader
			if tt.filename == "" {
				fh = &multipart.FileHeader{Filename: "", Size: int64(len(tt.data))}
			} else {
				fh = formFile(t, tt.filename, tt.data)
			}

			_, err := readUpload(fh, tt.maxBytes)
			var upErr *uploadError
			if !errors.As(err, &upErr) {
				t.Fatalf("error = %v, want *uploadError", err)
			}
			if upErr.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", upErr.status, tt.wantStatus)
			}
			if upErr.msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", upErr.msg, tt.wantMsg)
			}
		})
	}
}

func TestMaxSizeText(t *testing.T) {
	tests := []struct {
		maxBytes int64
		want     string
	}{
		{100 << 20, "100 MB"},
		{1 << 20, "1 MB"},
		{1<<20 - 1, "1048575 bytes"},
		{1024, "1024 bytes"},
	}

	for _, tt := range tests {
		if got := maxSizeText(tt.maxBytes); got != tt.want {
			t.Errorf("maxSizeText(%d) = %q, want %q", tt.maxBytes, got, tt.want)
		}
	}
}

func TestWriteOpError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "upload error keeps its status",
			err:        &uploadError{http.StatusRequestEntityTooLarge, "File too large. Maximum size is 100 MB"},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "File too large. Maximum size is 100 MB",
		},
		{
			name: "page spec error is 400 verbatim",
			err: func() error {
				_, err := pagespec.Parse("0", 5)
				return err
			}(),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "page number must be positive: 0",
		},
		{
			name:       "engine failure is 422",
			err:        pdfops.ErrInvalidPDF,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    pdfops.ErrInvalidPDF.Error(),
		},
		{
			name:       "anything else is a generic 500",
			err:        errors.New("disk exploded"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "an unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/merge", nil)
			writeOpError(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantMsg)
			}
		})
	}
}

func TestServePDF(t *testing.T) {
	rec := httptest.NewRecorder()
	servePDF(rec, []byte("%PDF-1.4 fake"), "report-merged.pdf")

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="report-merged.pdf"`) {
		t.Errorf("Content-Disposition = %q, missing filename", cd)
	}
	if got := rec.Header().Get("Content-Length"); got != "13" {
		t.Errorf("Content-Length = %q, want 13", got)
	}
}

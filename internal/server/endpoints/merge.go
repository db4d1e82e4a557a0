package endpoints

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/pdfops"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// MergeEndpoint handles POST /api/merge with multipart file upload.
type MergeEndpoint struct{}

var _ api.Endpoint = (*MergeEndpoint)(nil)

func (e *MergeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/merge", e.handler
}

func (e *MergeEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Merge PDF files
//	@Description	Merge two or more uploaded PDFs into a single document, in upload order
//	@Tags			pdf
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			files	formData	file	true	"PDF files to merge (repeat the field)"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/merge [post]
func (e *MergeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	maxBytes, maxMergeFiles := uploadLimits(r)

	files := r.MultipartForm.File["files"]
	if len(files) < 2 {
		writeError(w, http.StatusBadRequest, "At least 2 PDF files are required for merging")
		return
	}
	if len(files) > maxMergeFiles {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Maximum %d files allowed for merging", maxMergeFiles))
		return
	}

	docs := make([]io.ReadSeeker, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh, maxBytes)
		if err != nil {
			writeOpError(w, r, err)
			return
		}
		docs = append(docs, bytes.NewReader(data))
	}

	merged, err := pdfops.Merge(docs)
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Info("merged PDFs", "files", len(files), "bytes", len(merged))
	}

	servePDF(w, merged, pdfops.OutputFilename(files[0].Filename, "-merged"))
}

func (e *MergeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "merge <file.pdf> <file.pdf> [file.pdf...]",
		Short: "Merge PDF files into one document",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())

			files := make([]api.UploadFile, len(args))
			for i, path := range args {
				files[i] = api.UploadFile{Field: "files", Path: path}
			}

			return downloadTo(cmd, client, "/api/merge", files, nil, outputFile)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: name suggested by server)")
	return cmd
}

// downloadTo runs a multipart operation and saves the returned PDF,
// falling back to the server-suggested filename when none is given.
func downloadTo(cmd *cobra.Command, client *api.Client, path string, files []api.UploadFile, fields map[string]string, outputFile string) error {
	var buf bytes.Buffer
	suggested, err := client.PostMultipart(cmd.Context(), path, files, fields, &buf)
	if err != nil {
		return err
	}

	if outputFile == "" {
		outputFile = suggested
	}
	if outputFile == "" {
		outputFile = "output.pdf"
	}

	if err := os.WriteFile(outputFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	cmd.Printf("Wrote %s (%d bytes)\n", outputFile, buf.Len())
	return nil
}

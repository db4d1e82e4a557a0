package endpoints

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/pdfops"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// DeletePagesEndpoint handles POST /api/delete-pages.
type DeletePagesEndpoint struct{}

var _ api.Endpoint = (*DeletePagesEndpoint)(nil)

func (e *DeletePagesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/delete-pages", e.handler
}

func (e *DeletePagesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete pages from a PDF
//	@Description	Remove the pages named by the page specification, keeping the rest in order
//	@Tags			pdf
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file	formData	file	true	"PDF file"
//	@Param			pages	formData	string	true	"Pages to delete, e.g. 1,3-5,7"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/delete-pages [post]
func (e *DeletePagesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	file, spec, err := singleFileWithSpec(r)
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	out, err := pdfops.DeletePages(bytes.NewReader(file.data), spec)
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Info("deleted pages", "file", file.name, "pages", spec)
	}

	servePDF(w, out, pdfops.OutputFilename(file.name, "-pages-deleted"))
}

func (e *DeletePagesEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "delete-pages <file.pdf> <pages>",
		Short: "Delete pages from a PDF",
		Long:  "Delete pages from a PDF. Pages are given as a comma-separated list of page numbers and ranges, e.g. \"1,3-5,7\".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			files := []api.UploadFile{{Field: "file", Path: args[0]}}
			fields := map[string]string{"pages": args[1]}
			return downloadTo(cmd, client, "/api/delete-pages", files, fields, outputFile)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: name suggested by server)")
	return cmd
}

// upload is a single validated file from a multipart form.
type upload struct {
	name string
	data []byte
}

// singleFileWithSpec parses the common delete/extract form shape: one
// "file" part plus a "pages" field holding the page specification.
func singleFileWithSpec(r *http.Request) (upload, string, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return upload{}, "", &uploadError{
			status: http.StatusBadRequest,
			msg:    fmt.Sprintf("failed to parse form: %v", err),
		}
	}

	maxBytes, _ := uploadLimits(r)

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		return upload{}, "", &uploadError{status: http.StatusBadRequest, msg: "a PDF file is required"}
	}
	fh := files[0]

	spec := strings.TrimSpace(r.FormValue("pages"))
	if spec == "" {
		return upload{}, "", &uploadError{status: http.StatusBadRequest, msg: "page specification cannot be empty"}
	}

	data, err := readUpload(fh, maxBytes)
	if err != nil {
		return upload{}, "", err
	}
	return upload{name: fh.Filename, data: data}, spec, nil
}

package endpoints

import (
	"bytes"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/pdfops"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// ExtractPagesEndpoint handles POST /api/extract-pages.
type ExtractPagesEndpoint struct{}

var _ api.Endpoint = (*ExtractPagesEndpoint)(nil)

func (e *ExtractPagesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract-pages", e.handler
}

func (e *ExtractPagesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract pages from a PDF
//	@Description	Build a new PDF containing only the pages named by the page specification
//	@Tags			pdf
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file	formData	file	true	"PDF file"
//	@Param			pages	formData	string	true	"Pages to extract, e.g. 1,3-5,7"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/extract-pages [post]
func (e *ExtractPagesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	file, spec, err := singleFileWithSpec(r)
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	out, err := pdfops.ExtractPages(bytes.NewReader(file.data), spec)
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Info("extracted pages", "file", file.name, "pages", spec)
	}

	servePDF(w, out, pdfops.OutputFilename(file.name, "-extracted"))
}

func (e *ExtractPagesEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "extract-pages <file.pdf> <pages>",
		Short: "Extract pages from a PDF into a new document",
		Long:  "Extract pages from a PDF. Pages are given as a comma-separated list of page numbers and ranges, e.g. \"1,3-5,7\".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			files := []api.UploadFile{{Field: "file", Path: args[0]}}
			fields := map[string]string{"pages": args[1]}
			return downloadTo(cmd, client, "/api/extract-pages", files, fields, outputFile)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: name suggested by server)")
	return cmd
}

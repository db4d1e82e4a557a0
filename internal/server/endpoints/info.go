package endpoints

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/pdfops"
)

// InfoEndpoint handles POST /api/info, returning metadata for an uploaded PDF.
type InfoEndpoint struct{}

var _ api.Endpoint = (*InfoEndpoint)(nil)

func (e *InfoEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/info", e.handler
}

func (e *InfoEndpoint) RequiresInit() bool { return true }

// InfoResponse describes an uploaded PDF.
type InfoResponse struct {
	Filename  string `json:"filename"`
	Pages     int    `json:"pages"`
	SizeBytes int    `json:"size_bytes"`
}

// handler godoc
//
//	@Summary		Inspect a PDF
//	@Description	Return the page count and size of an uploaded PDF
//	@Tags			pdf
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file"
//	@Success		200		{object}	InfoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/info [post]
func (e *InfoEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}

	maxBytes, _ := uploadLimits(r)

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "a PDF file is required")
		return
	}

	data, err := readUpload(files[0], maxBytes)
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	pages, err := pdfops.PageCount(bytes.NewReader(data))
	if err != nil {
		writeOpError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, InfoResponse{
		Filename:  pdfops.SanitizeFilename(files[0].Filename),
		Pages:     pages,
		SizeBytes: len(data),
	})
}

func (e *InfoEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.pdf>",
		Short: "Show page count and size of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())

			var buf bytes.Buffer
			files := []api.UploadFile{{Field: "file", Path: args[0]}}
			if _, err := client.PostMultipart(cmd.Context(), "/api/info", files, nil, &buf); err != nil {
				return err
			}

			var info InfoResponse
			if err := json.NewDecoder(&buf).Decode(&info); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return api.Output(info)
		},
	}
}

package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/constants"
	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/sheet"
	"github.com/kozaktomas/card-grid/internal/source"
)

// RenderHandler turns an uploaded image into a printable sheet.
type RenderHandler struct {
	config *config.Config
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(cfg *config.Config) *RenderHandler {
	return &RenderHandler{config: cfg}
}

// parse reads the multipart form: the source image plus job fields.
func (h *RenderHandler) parse(w http.ResponseWriter, r *http.Request) (*source.Image, sheet.Job, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Web.MaxUploadBytes())
	if err := r.ParseMultipartForm(constants.MultipartMemory); err != nil {
		if status := statusForError(err); status == http.StatusRequestEntityTooLarge {
			return nil, sheet.Job{}, err
		}
		return nil, sheet.Job{}, fmt.Errorf("%w: failed to parse multipart form", layout.ErrInvalidParameter)
	}

	req, err := formRequest(r)
	if err != nil {
		return nil, sheet.Job{}, err
	}
	job, err := sheet.Resolve(h.config, req)
	if err != nil {
		return nil, sheet.Job{}, err
	}

	file, _, err := r.FormFile(constants.FieldImage)
	if err != nil {
		return nil, sheet.Job{}, fmt.Errorf("%w: %s file is required", layout.ErrInvalidParameter, constants.FieldImage)
	}
	defer file.Close()

	src, err := source.Decode(file)
	if err != nil {
		return nil, sheet.Job{}, err
	}
	return src, job, nil
}

// Render renders the sheet and returns it as a download.
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	src, job, err := h.parse(w, r)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	id := uuid.NewString()
	var buf bytes.Buffer
	res, err := sheet.Print(&buf, src, job)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	log.Printf("render %s: %dx%d px, %d cells, %s fit, %s, %d bytes",
		id, res.Width, res.Height, res.Cells, job.Mode, res.Format, res.Written)
	if res.Page != nil {
		log.Printf("render %s: pdf page %s", id, res.Page)
	}

	w.Header().Set("Content-Type", job.Format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", job.Format.Filename()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set(constants.RenderIDHeader, id)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Preview renders the sheet and returns a scaled-down PNG.
func (h *RenderHandler) Preview(w http.ResponseWriter, r *http.Request) {
	src, job, err := h.parse(w, r)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	maxSide := constants.DefaultPreviewSide
	if v, err := formInt(r, constants.FieldMaxSide); err != nil {
		respondFailure(w, r, err)
		return
	} else if v != nil {
		if *v < 1 || *v > constants.MaxPreviewSide {
			respondError(w, http.StatusBadRequest,
				fmt.Sprintf("%s must be between 1 and %d", constants.FieldMaxSide, constants.MaxPreviewSide))
			return
		}
		maxSide = *v
	}

	id := uuid.NewString()
	var buf bytes.Buffer
	res, err := sheet.Preview(&buf, src, job, maxSide)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	log.Printf("preview %s: %dx%d px, %d cells", id, res.Width, res.Height, res.Cells)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(constants.RenderIDHeader, id)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

package controllers

import (
	"net/http"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

// maxUploadBytes caps document uploads at 20 MiB.
const maxUploadBytes = 20 << 20

type DocumentController struct {
	svc services.DocumentService
}

func NewDocumentController(svc services.DocumentService) *DocumentController {
	return &DocumentController{svc: svc}
}

// ----------------------------------------------------------------
// GET /api/v1/documents?search=
// ----------------------------------------------------------------
func (c *DocumentController) ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.ListDocuments(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, err, "Failed to list documents")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DocumentsFromModels(list))
}

// ----------------------------------------------------------------
// GET /api/v1/documents/{id}
// ----------------------------------------------------------------
func (c *DocumentController) GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := c.svc.GetDocument(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch document")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DocumentFromModel(d))
}

// ----------------------------------------------------------------
// POST /api/v1/documents  (multipart: file, title, category)
// ----------------------------------------------------------------
func (c *DocumentController) UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err,
		)
		return
	}

	req := dtos.UploadDocumentRequest{
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Title is required", nil, err,
		)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Please select a file to upload", nil, err,
		)
		return
	}
	defer file.Close()

	d, err := c.svc.UploadDocument(
		r.Context(),
		sess.DisplayName,
		req,
		header.Filename,
		file,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		respondServiceError(w, err, "Failed to upload document")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.DocumentFromModel(d))
}

// ----------------------------------------------------------------
// PATCH /api/v1/documents/{id}
// ----------------------------------------------------------------
func (c *DocumentController) UpdateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateDocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	d, err := c.svc.UpdateDocument(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update document")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DocumentFromModel(d))
}

// ----------------------------------------------------------------
// DELETE /api/v1/documents/{id}
// ----------------------------------------------------------------
func (c *DocumentController) DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteDocument(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete document")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Document deleted"})
}

package dtos

import "github.com/legend1349/USYDSTRATA2025/internal/models"

type DocumentResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	FileName   string `json:"fileName"`
	FileURL    string `json:"fileUrl"`
	UploadedBy string `json:"uploadedBy"`
	UploadDate string `json:"uploadDate"`
	Category   string `json:"category"`
}

// UploadDocumentRequest carries the multipart form fields; the file part is
// handled by the controller.
type UploadDocumentRequest struct {
	Title    string `validate:"required"`
	Category string
}

type UpdateDocumentRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
}

func DocumentFromModel(d *models.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		Title:      d.Title,
		FileName:   d.FileName,
		FileURL:    d.FileURL,
		UploadedBy: d.UploadedBy,
		UploadDate: d.UploadDate.Format(DateLayout),
		Category:   d.Category,
	}
}

func DocumentsFromModels(list []*models.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, DocumentFromModel(d))
	}
	return out
}

func (r UpdateDocumentRequest) Apply(d *models.Document) {
	if r.Title != nil {
		d.Title = *r.Title
	}
	if r.Category != nil {
		d.Category = *r.Category
	}
}

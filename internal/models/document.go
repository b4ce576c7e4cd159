package models

import "time"

// Document categories are open strings in practice; these are the ones the
// portal offers in its picker.
const (
	DocumentCategoryGeneral   = "General"
	DocumentCategoryInsurance = "Insurance"
	DocumentCategoryMinutes   = "Minutes"
	DocumentCategoryFinancial = "Financial"
	DocumentCategoryLegal     = "Legal"
)

// Document references a stored file. FileURL is the blob store's public
// reference; deleting the document removes the blob first.
type Document struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadedBy string    `json:"uploaded_by"`
	UploadDate time.Time `json:"upload_date"`
	Category   string    `json:"category"`
}

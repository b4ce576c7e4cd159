package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *models.Document) error
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	List(ctx context.Context) ([]*models.Document, error)
	Update(ctx context.Context, d *models.Document) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type documentRepo struct {
	db DB
}

func NewDocumentRepository(db DB) DocumentRepository {
	return &documentRepo{db: db}
}

func baseSelectDocument() string {
	return `SELECT id, title, file_name, file_url, uploaded_by, upload_date, category
	        FROM documents`
}

func (r *documentRepo) scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(&d.ID, &d.Title, &d.FileName, &d.FileURL, &d.UploadedBy, &d.UploadDate, &d.Category)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepo) Create(ctx context.Context, d *models.Document) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO documents (title, file_name, file_url, uploaded_by, upload_date, category)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, d.Title, d.FileName, d.FileURL, d.UploadedBy, d.UploadDate, d.Category).Scan(&d.ID)
}

func (r *documentRepo) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	row := r.db.QueryRow(ctx, baseSelectDocument()+` WHERE id=$1`, id)
	return r.scanDocument(row)
}

// List returns the most recently uploaded documents first.
func (r *documentRepo) List(ctx context.Context) ([]*models.Document, error) {
	rows, err := r.db.Query(ctx, baseSelectDocument()+` ORDER BY upload_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Document
	for rows.Next() {
		d, err := r.scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *documentRepo) Update(ctx context.Context, d *models.Document) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE documents
		SET title=$1, file_name=$2, file_url=$3, uploaded_by=$4, upload_date=$5, category=$6
		WHERE id=$7
	`, d.Title, d.FileName, d.FileURL, d.UploadedBy, d.UploadDate, d.Category, d.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

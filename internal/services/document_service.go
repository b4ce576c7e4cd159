package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
	"github.com/legend1349/USYDSTRATA2025/internal/storage"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

// documentsFolder is the blob-container prefix for uploaded files.
const documentsFolder = "documents"

type DocumentService interface {
	ListDocuments(ctx context.Context, search string) ([]*models.Document, error)
	GetDocument(ctx context.Context, id int64) (*models.Document, error)
	UploadDocument(ctx context.Context, uploadedBy string, req dtos.UploadDocumentRequest, fileName string, file io.Reader, contentType string) (*models.Document, error)
	UpdateDocument(ctx context.Context, id int64, req dtos.UpdateDocumentRequest) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

type documentService struct {
	documents repositories.DocumentRepository
	blobs     storage.Store
	now       func() time.Time
}

func NewDocumentService(documents repositories.DocumentRepository, blobs storage.Store) DocumentService {
	return &documentService{
		documents: documents,
		blobs:     blobs,
		now:       time.Now,
	}
}

func (s *documentService) ListDocuments(ctx context.Context, search string) ([]*models.Document, error) {
	all, err := s.documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if search == "" {
		return all, nil
	}
	filtered := make([]*models.Document, 0, len(all))
	for _, d := range all {
		if matchesAny(search, d.Title, d.Category, d.FileName) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	d, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get document %d: %w", id, err)
	}
	return d, nil
}

// UploadDocument stores the file first, then the record. If the record
// insert fails the orphaned blob is removed on a best-effort basis.
func (s *documentService) UploadDocument(
	ctx context.Context,
	uploadedBy string,
	req dtos.UploadDocumentRequest,
	fileName string,
	file io.Reader,
	contentType string,
) (*models.Document, error) {
	category := req.Category
	if category == "" {
		category = models.DocumentCategoryGeneral
	}

	key := fmt.Sprintf("%s/%s%s", documentsFolder, uuid.NewString(), path.Ext(fileName))
	info, err := s.blobs.Put(ctx, key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("store document file: %w", err)
	}

	d := &models.Document{
		Title:      req.Title,
		FileName:   fileName,
		FileURL:    info.URL,
		UploadedBy: uploadedBy,
		UploadDate: s.now(),
		Category:   category,
	}
	if err := s.documents.Create(ctx, d); err != nil {
		if _, cleanupErr := s.blobs.Delete(ctx, key); cleanupErr != nil {
			utils.Logger.WithError(cleanupErr).Warnf("Orphaned blob %s left behind", key)
		}
		return nil, fmt.Errorf("create document record: %w", err)
	}
	return d, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id int64, req dtos.UpdateDocumentRequest) (*models.Document, error) {
	d, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(d)
	if err := s.documents.Update(ctx, d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update document %d: %w", id, err)
	}
	return d, nil
}

// DeleteDocument removes the backing file before the record. If the blob
// delete fails the record is kept, so no half-deleted state is observable.
func (s *documentService) DeleteDocument(ctx context.Context, id int64) error {
	d, err := s.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	key, err := s.blobs.KeyFromURL(d.FileURL)
	if err != nil {
		return fmt.Errorf("resolve blob key for document %d: %w", id, err)
	}
	if _, err := s.blobs.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	ok, err := s.documents.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

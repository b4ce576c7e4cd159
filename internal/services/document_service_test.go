package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/storage"
)

// faultyBlobStore wraps a MemoryStore and lets tests fail individual
// operations.
type faultyBlobStore struct {
	*storage.MemoryStore
	putErr    error
	deleteErr error
}

func (f *faultyBlobStore) Put(ctx context.Context, key string, r io.Reader, contentType string) (storage.Info, error) {
	if f.putErr != nil {
		return storage.Info{}, f.putErr
	}
	return f.MemoryStore.Put(ctx, key, r, contentType)
}

func (f *faultyBlobStore) Delete(ctx context.Context, key string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	return f.MemoryStore.Delete(ctx, key)
}

func newDocumentServiceForTest(repo *stubDocumentRepo, blobs storage.Store) DocumentService {
	svc := NewDocumentService(repo, blobs).(*documentService)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func uploadTestDocument(t *testing.T, svc DocumentService, title string) *models.Document {
	t.Helper()
	d, err := svc.UploadDocument(
		context.Background(),
		"Alice Wu",
		dtos.UploadDocumentRequest{Title: title, Category: models.DocumentCategoryInsurance},
		"certificate.pdf",
		strings.NewReader("%PDF-1.4 test"),
		"application/pdf",
	)
	require.NoError(t, err)
	return d
}

func TestDocumentService_UploadStoresBlobAndRecord(t *testing.T) {
	repo := newStubDocumentRepo()
	blobs := storage.NewMemory()
	svc := newDocumentServiceForTest(repo, blobs)

	d := uploadTestDocument(t, svc, "Insurance certificate 2025")

	assert.NotZero(t, d.ID)
	assert.Equal(t, "certificate.pdf", d.FileName)
	assert.Equal(t, models.DocumentCategoryInsurance, d.Category)
	assert.Equal(t, "Alice Wu", d.UploadedBy)
	assert.True(t, strings.HasPrefix(d.FileURL, "memory://blobs/documents/"))
	assert.True(t, strings.HasSuffix(d.FileURL, ".pdf"))
	assert.Equal(t, 1, blobs.Len())

	key, err := blobs.KeyFromURL(d.FileURL)
	require.NoError(t, err)
	data, ok := blobs.Get(key)
	require.True(t, ok)
	assert.Equal(t, "%PDF-1.4 test", string(data))
}

func TestDocumentService_UploadDefaultsCategory(t *testing.T) {
	repo := newStubDocumentRepo()
	svc := newDocumentServiceForTest(repo, storage.NewMemory())

	d, err := svc.UploadDocument(
		context.Background(), "Bob Carr",
		dtos.UploadDocumentRequest{Title: "AGM notice"},
		"notice.docx", strings.NewReader("doc"), "application/octet-stream",
	)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentCategoryGeneral, d.Category)
}

func TestDocumentService_UploadBlobFailureLeavesNoRecord(t *testing.T) {
	repo := newStubDocumentRepo()
	blobs := &faultyBlobStore{MemoryStore: storage.NewMemory(), putErr: errors.New("bucket unavailable")}
	svc := newDocumentServiceForTest(repo, blobs)

	_, err := svc.UploadDocument(
		context.Background(), "Alice Wu",
		dtos.UploadDocumentRequest{Title: "Doomed upload"},
		"x.pdf", strings.NewReader("x"), "application/pdf",
	)
	require.Error(t, err)

	list, err := svc.ListDocuments(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDocumentService_UploadRecordFailureCleansUpBlob(t *testing.T) {
	repo := newStubDocumentRepo()
	repo.errs["create"] = errors.New("insert failed")
	blobs := storage.NewMemory()
	svc := newDocumentServiceForTest(repo, blobs)

	_, err := svc.UploadDocument(
		context.Background(), "Alice Wu",
		dtos.UploadDocumentRequest{Title: "Doomed upload"},
		"x.pdf", strings.NewReader("x"), "application/pdf",
	)
	require.Error(t, err)
	assert.Zero(t, blobs.Len())
}

func TestDocumentService_DeleteRemovesRecordAndBlob(t *testing.T) {
	repo := newStubDocumentRepo()
	blobs := storage.NewMemory()
	svc := newDocumentServiceForTest(repo, blobs)

	d := uploadTestDocument(t, svc, "Minutes 2025-05")

	require.NoError(t, svc.DeleteDocument(context.Background(), d.ID))
	assert.Zero(t, blobs.Len())

	_, err := svc.GetDocument(context.Background(), d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentService_DeleteBlobFailureKeepsRecord(t *testing.T) {
	repo := newStubDocumentRepo()
	blobs := &faultyBlobStore{MemoryStore: storage.NewMemory()}
	svc := newDocumentServiceForTest(repo, blobs)

	d := uploadTestDocument(t, svc, "Sticky document")

	blobs.deleteErr = errors.New("access denied")
	err := svc.DeleteDocument(context.Background(), d.ID)
	require.Error(t, err)

	// The record must survive when the file could not be removed.
	got, err := svc.GetDocument(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sticky document", got.Title)
	assert.Equal(t, 1, blobs.Len())
}

func TestDocumentService_UpdateIsPartial(t *testing.T) {
	repo := newStubDocumentRepo()
	svc := newDocumentServiceForTest(repo, storage.NewMemory())

	d := uploadTestDocument(t, svc, "Old title")

	newTitle := "Renamed"
	updated, err := svc.UpdateDocument(context.Background(), d.ID, dtos.UpdateDocumentRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, models.DocumentCategoryInsurance, updated.Category)
	assert.Equal(t, d.FileURL, updated.FileURL)
}

func TestDocumentService_SearchByTitleCategoryFileName(t *testing.T) {
	repo := newStubDocumentRepo()
	svc := newDocumentServiceForTest(repo, storage.NewMemory())
	ctx := context.Background()

	uploadTestDocument(t, svc, "Building insurance")
	_, err := svc.UploadDocument(ctx, "Bob Carr",
		dtos.UploadDocumentRequest{Title: "By-laws", Category: models.DocumentCategoryLegal},
		"bylaws.pdf", strings.NewReader("x"), "application/pdf")
	require.NoError(t, err)

	byCategory, err := svc.ListDocuments(ctx, "legal")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "By-laws", byCategory[0].Title)

	byFileName, err := svc.ListDocuments(ctx, "certificate")
	require.NoError(t, err)
	require.Len(t, byFileName, 1)
	assert.Equal(t, "Building insurance", byFileName[0].Title)
}

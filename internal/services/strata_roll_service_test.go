package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
)

func TestStrataRollService_CreateAndList(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewStrataRollService(repo)
	ctx := context.Background()

	created, err := svc.CreateOwner(ctx, dtos.CreateOwnerRequest{
		Unit:        "12",
		Name:        "Alice Wu",
		Email:       "alice@example.com",
		Phone:       "0400 000 000",
		Entitlement: 8.3,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetOwner(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Wu", got.Name)
	assert.Equal(t, 8.3, got.Entitlement)

	list, err := svc.ListOwners(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestStrataRollService_ListOrderedByUnit(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewStrataRollService(repo)
	ctx := context.Background()

	for _, unit := range []string{"31", "02", "17"} {
		_, err := svc.CreateOwner(ctx, dtos.CreateOwnerRequest{
			Unit: unit, Name: "Owner " + unit, Email: "o" + unit + "@example.com",
		})
		require.NoError(t, err)
	}

	list, err := svc.ListOwners(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "02", list[0].Unit)
	assert.Equal(t, "17", list[1].Unit)
	assert.Equal(t, "31", list[2].Unit)
}

func TestStrataRollService_SearchIsCaseInsensitiveSubset(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewStrataRollService(repo)
	ctx := context.Background()

	_, err := svc.CreateOwner(ctx, dtos.CreateOwnerRequest{
		Unit: "5", Name: "Bronwyn Clarke", Email: "bron@example.com",
	})
	require.NoError(t, err)
	_, err = svc.CreateOwner(ctx, dtos.CreateOwnerRequest{
		Unit: "6", Name: "Dmitri Petrov", Email: "dmitri@example.com",
	})
	require.NoError(t, err)

	matched, err := svc.ListOwners(ctx, "BRON")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Bronwyn Clarke", matched[0].Name)

	all, err := svc.ListOwners(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := svc.ListOwners(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStrataRollService_UpdateIsPartial(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewStrataRollService(repo)
	ctx := context.Background()

	created, err := svc.CreateOwner(ctx, dtos.CreateOwnerRequest{
		Unit: "9", Name: "Old Name", Email: "old@example.com", Phone: "111", Entitlement: 4,
	})
	require.NoError(t, err)

	newName := "New Name"
	updated, err := svc.UpdateOwner(ctx, created.ID, dtos.UpdateOwnerRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "9", updated.Unit)
	assert.Equal(t, "old@example.com", updated.Email)
	assert.Equal(t, "111", updated.Phone)
	assert.Equal(t, 4.0, updated.Entitlement)
}

func TestStrataRollService_NotFound(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewStrataRollService(repo)
	ctx := context.Background()

	_, err := svc.GetOwner(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	name := "x"
	_, err = svc.UpdateOwner(ctx, 404, dtos.UpdateOwnerRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteOwner(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStrataRollService_DeleteThenGone(t *testing.T) {
	repo := newStubOwnerRepo()
	svc := NewStrataRollService(repo)
	ctx := context.Background()

	created, err := svc.CreateOwner(ctx, dtos.CreateOwnerRequest{
		Unit: "3", Name: "Gone Soon", Email: "gone@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOwner(ctx, created.ID))

	_, err = svc.GetOwner(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// A second delete of the same id reports not found, not success.
	err = svc.DeleteOwner(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStrataRollService_RepoErrorIsWrapped(t *testing.T) {
	repo := newStubOwnerRepo()
	repo.errs["list"] = errors.New("connection refused")
	svc := NewStrataRollService(repo)

	_, err := svc.ListOwners(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list owners")
}

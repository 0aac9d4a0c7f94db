package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/repository"
)

func int64Ptr(i int64) *int64 { return &i }

func TestCartAdd_CreatesNewItem(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	item, err := repo.Add(ctx, repository.AddCartItemInput{
		ProductID: 1,
		Size:      "M",
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), item.ID)
	assert.Nil(t, item.UserID)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartAdd_QuantityDefaultsToOne(t *testing.T) {
	repo := NewCartRepository(NewStore())

	item, err := repo.Add(context.Background(), repository.AddCartItemInput{
		ProductID: 1,
		Size:      "S",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartAdd_MergesSameSelection(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	first, err := repo.Add(ctx, repository.AddCartItemInput{
		UserID:    int64Ptr(5),
		ProductID: 1,
		Size:      "L",
		Quantity:  1,
	})
	require.NoError(t, err)

	second, err := repo.Add(ctx, repository.AddCartItemInput{
		UserID:    int64Ptr(5),
		ProductID: 1,
		Size:      "L",
		Quantity:  3,
	})
	require.NoError(t, err)

	// Same owner+product+size merges into a single record.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.Quantity)

	items, err := repo.List(ctx, int64Ptr(5))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestCartAdd_GuestAndUserDoNotMerge(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	guest, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)

	owned, err := repo.Add(ctx, repository.AddCartItemInput{UserID: int64Ptr(5), ProductID: 1, Size: "M"})
	require.NoError(t, err)

	assert.NotEqual(t, guest.ID, owned.ID)
}

func TestCartAdd_DifferentSizeDoesNotMerge(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	small, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "S"})
	require.NoError(t, err)

	large, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "L"})
	require.NoError(t, err)

	assert.NotEqual(t, small.ID, large.ID)
}

func TestCartList_ScopesAreDisjoint(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, repository.AddCartItemInput{UserID: int64Ptr(5), ProductID: 1, Size: "M"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, repository.AddCartItemInput{UserID: int64Ptr(7), ProductID: 2, Size: "S"})
	require.NoError(t, err)

	guest, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, guest, 1)
	assert.Nil(t, guest[0].UserID)

	user5, err := repo.List(ctx, int64Ptr(5))
	require.NoError(t, err)
	require.Len(t, user5, 1)
	require.NotNil(t, user5[0].UserID)
	assert.Equal(t, int64(5), *user5[0].UserID)
}

func TestCartUpdateQuantity(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	item, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)

	updated, err := repo.UpdateQuantity(ctx, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	_, err = repo.UpdateQuantity(ctx, 404, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRemove(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	item, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, item.ID))
	assert.ErrorIs(t, repo.Remove(ctx, item.ID), apperrors.ErrNotFound)
}

func TestCartClear_GuestScopeLeavesOwnedItems(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, repository.AddCartItemInput{UserID: int64Ptr(5), ProductID: 1, Size: "M"})
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, nil))

	guest, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, guest)

	owned, err := repo.List(ctx, int64Ptr(5))
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestCartClear_EmptyScopeSucceeds(t *testing.T) {
	repo := NewCartRepository(NewStore())

	assert.NoError(t, repo.Clear(context.Background(), int64Ptr(99)))
}

func TestCartAdd_IDsNotReusedAfterRemoval(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	item, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, item.ID))

	next, err := repo.Add(ctx, repository.AddCartItemInput{ProductID: 1, Size: "M"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, item.ID)
}

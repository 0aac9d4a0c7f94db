package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/storefront/internal/domain"
)

func addCartItem(t *testing.T, router http.Handler, body map[string]any) domain.CartItem {
	t.Helper()

	rec, env := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/cart", body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var item domain.CartItem
	decodeData(t, env, &item)
	return item
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t, true)

	item := addCartItem(t, router, map[string]any{"product_id": 1, "size": "M", "quantity": 2})
	assert.Equal(t, 2, item.Quantity)

	// Same selection merges rather than creating a second line.
	merged := addCartItem(t, router, map[string]any{"product_id": 1, "size": "M", "quantity": 1})
	assert.Equal(t, item.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)

	rec, env := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []domain.CartLine
	decodeData(t, env, &lines)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, "Oakline Heavyweight Tee", lines[0].Product.Name)

	rec, env = doRequest(t, router, jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/cart/%d", item.ID), map[string]any{"quantity": 7}))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.CartItem
	decodeData(t, env, &updated)
	assert.Equal(t, 7, updated.Quantity)

	rec, _ = doRequest(t, router, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/v1/cart/%d", item.ID), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var after []domain.CartLine
	decodeData(t, env, &after)
	assert.Empty(t, after)
}

func TestCartQuantityDefaultsToOne(t *testing.T) {
	router := newTestRouter(t, true)

	item := addCartItem(t, router, map[string]any{"product_id": 1, "size": "S"})
	assert.Equal(t, 1, item.Quantity)
}

func TestCartScoping(t *testing.T) {
	router := newTestRouter(t, true)

	addCartItem(t, router, map[string]any{"product_id": 1, "size": "M"})
	addCartItem(t, router, map[string]any{"product_id": 1, "size": "M", "user_id": 5})

	// Guest and owned carts are disjoint views.
	rec, env := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []domain.CartLine
	decodeData(t, env, &lines)
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].UserID)

	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart?user_id=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, env, &lines)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].UserID)
	assert.Equal(t, int64(5), *lines[0].UserID)
}

func TestCartInvalidUserIDParam(t *testing.T) {
	router := newTestRouter(t, true)

	for _, raw := range []string{"abc", "-1", "0"} {
		rec, env := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart?user_id="+raw, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_PARAMETER", env.Error.Code)
	}
}

func TestClearCart_ScopedToGuest(t *testing.T) {
	router := newTestRouter(t, true)

	addCartItem(t, router, map[string]any{"product_id": 1, "size": "M"})
	addCartItem(t, router, map[string]any{"product_id": 1, "size": "M", "user_id": 5})

	rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var lines []domain.CartLine
	rec, env := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, env, &lines)
	assert.Empty(t, lines)

	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/cart?user_id=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, env, &lines)
	assert.Len(t, lines, 1)
}

func TestClearCart_EmptyScopeSucceeds(t *testing.T) {
	router := newTestRouter(t, true)

	rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/api/v1/cart?user_id=42", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAddCartItem_ValidationErrors(t *testing.T) {
	router := newTestRouter(t, true)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing product id", map[string]any{"size": "M"}},
		{"missing size", map[string]any{"product_id": 1}},
		{"negative quantity", map[string]any{"product_id": 1, "size": "M", "quantity": -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/cart", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		})
	}
}

func TestUpdateCartQuantity_Errors(t *testing.T) {
	router := newTestRouter(t, true)

	// Unknown item.
	rec, env := doRequest(t, router, jsonRequest(t, http.MethodPatch, "/api/v1/cart/99", map[string]any{"quantity": 2}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	// Non-positive quantity.
	item := addCartItem(t, router, map[string]any{"product_id": 1, "size": "M"})
	rec, env = doRequest(t, router, jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/cart/%d", item.ID), map[string]any{"quantity": 0}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}

func TestRemoveCartItem_NotFound(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/api/v1/cart/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

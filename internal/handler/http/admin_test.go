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

func asAdmin(req *http.Request) *http.Request {
	req.SetBasicAuth("admin", "admin123")
	return req
}

func TestAdminAuth(t *testing.T) {
	router := newTestRouter(t, true)

	// A regular account that must not pass the admin gate.
	rec, _ := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/users", map[string]any{
		"username": "casey",
		"password": "hunter2",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name       string
		authorize  func(req *http.Request)
		wantStatus int
	}{
		{
			"missing header",
			func(req *http.Request) {},
			http.StatusUnauthorized,
		},
		{
			"wrong scheme",
			func(req *http.Request) { req.Header.Set("Authorization", "Bearer sometoken") },
			http.StatusUnauthorized,
		},
		{
			"undecodable payload",
			func(req *http.Request) { req.Header.Set("Authorization", "Basic !!!not-base64!!!") },
			http.StatusInternalServerError,
		},
		{
			"missing colon separator",
			// "admin" alone, base64-encoded
			func(req *http.Request) { req.Header.Set("Authorization", "Basic YWRtaW4=") },
			http.StatusUnauthorized,
		},
		{
			"wrong password",
			func(req *http.Request) { req.SetBasicAuth("admin", "nope") },
			http.StatusForbidden,
		},
		{
			"non-admin credentials",
			func(req *http.Request) { req.SetBasicAuth("casey", "hunter2") },
			http.StatusForbidden,
		},
		{
			"valid admin credentials",
			func(req *http.Request) { req.SetBasicAuth("admin", "admin123") },
			http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reviews", nil)
			tt.authorize(req)
			rec, _ := doRequest(t, router, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}

func TestAdminListReviews_IncludesUnapproved(t *testing.T) {
	router := newTestRouter(t, false)

	rec, _ := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"name":   "Riley",
		"rating": 4,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, router, asAdmin(httptest.NewRequest(http.MethodGet, "/api/v1/admin/reviews", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []domain.Review
	decodeData(t, env, &reviews)
	require.Len(t, reviews, 1)
	assert.False(t, reviews[0].Approved)
}

func TestAdminApproveReview_PublishesAndRates(t *testing.T) {
	router := newTestRouter(t, false)

	rec, env := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"name":   "Riley",
		"rating": 4,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var review domain.Review
	decodeData(t, env, &review)

	rec, env = doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/reviews/%d", review.ID), map[string]any{"approved": true})))
	require.Equal(t, http.StatusOK, rec.Code)

	var approved domain.Review
	decodeData(t, env, &approved)
	assert.True(t, approved.Approved)

	// Now public, and rolled into the product aggregate.
	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var public []domain.Review
	decodeData(t, env, &public)
	assert.Len(t, public, 1)

	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var product domain.Product
	decodeData(t, env, &product)
	assert.Equal(t, "4.0", product.Rating)
	assert.Equal(t, 1, product.ReviewCount)

	// Revoking approval hides it again.
	rec, _ = doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/reviews/%d", review.ID), map[string]any{"approved": false})))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var hidden []domain.Review
	decodeData(t, env, &hidden)
	assert.Empty(t, hidden)
}

func TestAdminUpdateReview_Validation(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/reviews/1", map[string]any{})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestAdminDeleteReview_RecomputesRating(t *testing.T) {
	router := newTestRouter(t, true)

	rec, _ := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"name":   "Riley",
		"rating": 5,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, router, jsonRequest(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"name":   "Casey",
		"rating": 3,
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var second domain.Review
	decodeData(t, env, &second)

	rec, _ = doRequest(t, router, asAdmin(httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/v1/admin/reviews/%d", second.ID), nil)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var product domain.Product
	decodeData(t, env, &product)
	assert.Equal(t, "5.0", product.Rating)
	assert.Equal(t, 1, product.ReviewCount)
}

func TestAdminDeleteReview_NotFound(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reviews/99", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAdminUpdateProduct_PartialUpdate(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/products/1", map[string]any{"price": "39.5", "featured": false})))
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	decodeData(t, env, &product)
	assert.Equal(t, "39.50", product.Price)
	assert.False(t, product.Featured)
	// Untouched fields keep their values.
	assert.Equal(t, "Oakline Heavyweight Tee", product.Name)
	require.NotNil(t, product.Badge)
}

func TestAdminUpdateProduct_ClearsBadgeWithNull(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/products/1", map[string]any{"badge": nil})))
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	decodeData(t, env, &product)
	assert.Nil(t, product.Badge)

	// A patch that omits badge entirely leaves it cleared.
	rec, env = doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/products/1", map[string]any{"name": "Oakline Heavyweight Tee v2"})))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, env, &product)
	assert.Nil(t, product.Badge)
	assert.Equal(t, "Oakline Heavyweight Tee v2", product.Name)
}

func TestAdminUpdateProduct_SetsBadge(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/products/1", map[string]any{"badge": "Back in Stock"})))
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	decodeData(t, env, &product)
	require.NotNil(t, product.Badge)
	assert.Equal(t, "Back in Stock", *product.Badge)
}

func TestAdminUpdateProduct_InvalidPrice(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/products/1", map[string]any{"price": "not-a-number"})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAdminUpdateProduct_NotFound(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doRequest(t, router, asAdmin(jsonRequest(t, http.MethodPatch,
		"/api/v1/admin/products/99", map[string]any{"name": "Ghost"})))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

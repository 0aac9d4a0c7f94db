package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/service"
	"github.com/oakline/storefront/pkg/httputil"
	"github.com/oakline/storefront/pkg/validator"
)

// AdminHandler handles the Basic-Auth-protected moderation endpoints.
type AdminHandler struct {
	reviews *service.ReviewService
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(reviews *service.ReviewService, catalog *service.CatalogService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{reviews: reviews, catalog: catalog, logger: logger}
}

// UpdateReviewRequest is the JSON request body for toggling review approval.
type UpdateReviewRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// UpdateProductRequest is the JSON request body for a partial product
// update. Absent fields keep their current values; badge accepts an
// explicit null to clear the label.
type UpdateProductRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string                 `json:"description"`
	Price       *string                 `json:"price"`
	Image       *string                 `json:"image"`
	Rating      *string                 `json:"rating"`
	ReviewCount *int                    `json:"review_count" validate:"omitempty,gte=0"`
	Sizes       []string                `json:"sizes"`
	Badge       domain.Nullable[string] `json:"badge"`
	Featured    *bool                   `json:"featured"`
}

// ListReviews handles GET /api/v1/admin/reviews. Unlike the public listing,
// this includes unapproved reviews.
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAllReviews(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}

// UpdateReview handles PATCH /api/v1/admin/reviews/{id}.
func (h *AdminHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.reviews.SetApproval(r.Context(), id, *req.Approved)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

// DeleteReview handles DELETE /api/v1/admin/reviews/{id}.
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateProduct handles PATCH /api/v1/admin/products/{id}.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Sizes:       req.Sizes,
		Badge:       req.Badge,
		Featured:    req.Featured,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

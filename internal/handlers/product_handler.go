package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/service"
	"github.com/oKauaDev/establo/pkg/response"
	"github.com/oKauaDev/establo/pkg/validation"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products *service.ProductService
	logger   *zap.Logger
}

// NewProductHandler creates a product handler.
func NewProductHandler(products *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// CreateProductRequest is the body of POST /product/create.
type CreateProductRequest struct {
	Name            string  `json:"name" validate:"required,min=3,max=255"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	EstablishmentID string  `json:"establishmentId" validate:"required,uuid"`
}

// EditProductRequest is the body of PUT /product/edit/{id}.
type EditProductRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	EstablishmentID *string  `json:"establishmentId,omitempty" validate:"omitempty,uuid"`
}

// ProductResponse is the public projection of a product.
type ProductResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	EstablishmentID string  `json:"establishmentId"`
}

func projectProduct(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Price:           product.Price,
		EstablishmentID: product.EstablishmentID,
	}
}

// Create handles POST /product/create.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.Create(r.Context(), req.Name, req.Price, req.EstablishmentID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, "product created successfully", projectProduct(product))
}

// Get handles GET /product/find/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "product found successfully", projectProduct(product))
}

// Edit handles PUT /product/edit/{id}.
func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req EditProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.EstablishmentID != nil {
		fields["establishmentId"] = *req.EstablishmentID
	}

	product, err := h.products.Edit(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "product edited successfully", projectProduct(product))
}

// Delete handles DELETE /product/delete/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "product deleted successfully", nil)
}

// List handles GET /product/list.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "products listed successfully", projectProducts(products))
}

// ListByEstablishment handles GET /product/list/{establishment}.
func (h *ProductHandler) ListByEstablishment(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListByEstablishment(r.Context(), chi.URLParam(r, "establishment"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "products listed successfully", projectProducts(products))
}

func projectProducts(products []domain.Product) []ProductResponse {
	projected := make([]ProductResponse, 0, len(products))
	for i := range products {
		projected = append(projected, projectProduct(&products[i]))
	}
	return projected
}

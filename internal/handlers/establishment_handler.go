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

// EstablishmentHandler handles establishment-related HTTP requests,
// including the rules sub-resource.
type EstablishmentHandler struct {
	establishments *service.EstablishmentService
	logger         *zap.Logger
}

// NewEstablishmentHandler creates an establishment handler.
func NewEstablishmentHandler(establishments *service.EstablishmentService, logger *zap.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{establishments: establishments, logger: logger}
}

// CreateEstablishmentRequest is the body of POST /establishment/create.
type CreateEstablishmentRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=255"`
	OwnerID string `json:"ownerId" validate:"required,uuid"`
	Type    string `json:"type" validate:"required,oneof=shopping local"`
}

// EditEstablishmentRequest is the body of PUT /establishment/edit/{id}.
type EditEstablishmentRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	OwnerID *string `json:"ownerId,omitempty" validate:"omitempty,uuid"`
	Type    *string `json:"type,omitempty" validate:"omitempty,oneof=shopping local"`
}

// EditRulesRequest is the body of PUT /establishment/rules/{id}/edit.
type EditRulesRequest struct {
	PicturesLimit *int `json:"picturesLimit,omitempty" validate:"omitempty,gt=0"`
	VideoLimit    *int `json:"videoLimit,omitempty" validate:"omitempty,gt=0"`
}

// EstablishmentResponse is the public projection of an establishment.
type EstablishmentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
	Type    string `json:"type"`
}

// RulesResponse is the public projection of an establishment rules row.
type RulesResponse struct {
	ID              string `json:"id"`
	EstablishmentID string `json:"establishmentId"`
	PicturesLimit   int    `json:"picturesLimit"`
	VideoLimit      int    `json:"videoLimit"`
}

func projectEstablishment(establishment *domain.Establishment) EstablishmentResponse {
	return EstablishmentResponse{
		ID:      establishment.ID,
		Name:    establishment.Name,
		OwnerID: establishment.OwnerID,
		Type:    string(establishment.Type),
	}
}

func projectRules(rules *domain.EstablishmentRules) RulesResponse {
	return RulesResponse{
		ID:              rules.ID,
		EstablishmentID: rules.EstablishmentID,
		PicturesLimit:   rules.PicturesLimit,
		VideoLimit:      rules.VideoLimit,
	}
}

// Create handles POST /establishment/create.
func (h *EstablishmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	establishment, err := h.establishments.Create(r.Context(), req.Name, req.OwnerID, domain.EstablishmentType(req.Type))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, "establishment created successfully", projectEstablishment(establishment))
}

// Get handles GET /establishment/find/{id}.
func (h *EstablishmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	establishment, err := h.establishments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "establishment found successfully", projectEstablishment(establishment))
}

// Edit handles PUT /establishment/edit/{id}.
func (h *EstablishmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req EditEstablishmentRequest
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
	if req.OwnerID != nil {
		fields["ownerId"] = *req.OwnerID
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}

	establishment, err := h.establishments.Edit(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "establishment edited successfully", projectEstablishment(establishment))
}

// Delete handles DELETE /establishment/delete/{id}.
func (h *EstablishmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.establishments.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "establishment deleted successfully", nil)
}

// Query handles GET /establishment/query with optional name and type
// query parameters. With neither it behaves like a full list.
func (h *EstablishmentHandler) Query(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	estType := r.URL.Query().Get("type")

	if estType != "" && !domain.EstablishmentType(estType).Valid() {
		response.Error(w, http.StatusBadRequest, "type must be one of: shopping local")
		return
	}

	establishments, err := h.establishments.Filter(r.Context(), name, estType)
	if err != nil {
		response.AppError(w, err)
		return
	}

	projected := make([]EstablishmentResponse, 0, len(establishments))
	for i := range establishments {
		projected = append(projected, projectEstablishment(&establishments[i]))
	}
	response.JSON(w, http.StatusOK, "establishments listed successfully", projected)
}

// List handles GET /establishment/list.
func (h *EstablishmentHandler) List(w http.ResponseWriter, r *http.Request) {
	establishments, err := h.establishments.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	projected := make([]EstablishmentResponse, 0, len(establishments))
	for i := range establishments {
		projected = append(projected, projectEstablishment(&establishments[i]))
	}
	response.JSON(w, http.StatusOK, "establishments listed successfully", projected)
}

// GetRules handles GET /establishment/rules/{id}. The id is the
// establishment id, not the rules row id.
func (h *EstablishmentHandler) GetRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.establishments.GetRules(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "establishment rules found successfully", projectRules(rules))
}

// EditRules handles PUT /establishment/rules/{id}/edit.
func (h *EstablishmentHandler) EditRules(w http.ResponseWriter, r *http.Request) {
	var req EditRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.PicturesLimit != nil {
		fields["picturesLimit"] = *req.PicturesLimit
	}
	if req.VideoLimit != nil {
		fields["videoLimit"] = *req.VideoLimit
	}

	rules, err := h.establishments.EditRules(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "establishment rules edited successfully", projectRules(rules))
}

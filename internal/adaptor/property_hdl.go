package adaptor

import (
	"encoding/json"
	"net/http"

	"property-hub/internal/dto/request"
	"property-hub/internal/usecase"
	"property-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// List handles GET /api/properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	req := &request.ListPropertiesRequest{
		PaginatedRequest: parsePagination(r),
		Status:           r.URL.Query().Get("status"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	properties, err := h.service.ListProperties(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// Get handles GET /api/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	property, err := h.service.GetProperty(r.Context(), propertyID)
	if err != nil {
		handleServiceError(w, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// Create handles POST /api/properties (staff only)
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create property")
		return
	}

	utils.ResponseCreated(w, "success", property)
}

// Update handles PUT /api/properties/{id} (staff only)
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), propertyID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// Delete handles DELETE /api/properties/{id} (staff only)
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	if err := h.service.DeleteProperty(r.Context(), propertyID); err != nil {
		handleServiceError(w, h.log, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

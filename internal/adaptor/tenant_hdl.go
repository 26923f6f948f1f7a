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

type TenantHandler struct {
	service usecase.TenantService
	log     *zap.Logger
}

func NewTenantHandler(service usecase.TenantService, log *zap.Logger) *TenantHandler {
	return &TenantHandler{
		service: service,
		log:     log.With(zap.String("handler", "tenant")),
	}
}

// List handles GET /api/tenants (staff only)
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	tenants, err := h.service.ListTenants(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list tenants")
		return
	}

	utils.ResponseSuccess(w, "success", tenants)
}

// Get handles GET /api/tenants/{id} (staff only)
func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "id")
	if tenantID == "" {
		utils.ResponseBadRequest(w, "Tenant ID is required", nil)
		return
	}

	tenant, err := h.service.GetTenant(r.Context(), tenantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get tenant")
		return
	}

	utils.ResponseSuccess(w, "success", tenant)
}

// Create handles POST /api/tenants (staff only)
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tenant, err := h.service.CreateTenant(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tenant")
		return
	}

	utils.ResponseCreated(w, "success", tenant)
}

// Update handles PUT /api/tenants/{id} (staff only)
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "id")
	if tenantID == "" {
		utils.ResponseBadRequest(w, "Tenant ID is required", nil)
		return
	}

	var req request.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tenant, err := h.service.UpdateTenant(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tenant")
		return
	}

	utils.ResponseSuccess(w, "success", tenant)
}

// Delete handles DELETE /api/tenants/{id} (staff only)
func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "id")
	if tenantID == "" {
		utils.ResponseBadRequest(w, "Tenant ID is required", nil)
		return
	}

	if err := h.service.DeleteTenant(r.Context(), tenantID); err != nil {
		handleServiceError(w, h.log, err, "delete tenant")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

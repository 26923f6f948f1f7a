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

type MaintenanceHandler struct {
	service usecase.MaintenanceService
	log     *zap.Logger
}

func NewMaintenanceHandler(service usecase.MaintenanceService, log *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
		log:     log.With(zap.String("handler", "maintenance")),
	}
}

// List handles GET /api/maintenance (staff only)
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	req := &request.ListMaintenanceRequest{
		PaginatedRequest: parsePagination(r),
		Status:           r.URL.Query().Get("status"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	requests, err := h.service.ListRequests(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list maintenance requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// ListMine handles GET /api/maintenance/me, the caller's own requests.
func (h *MaintenanceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := parsePagination(r)

	requests, err := h.service.ListTenantRequests(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list own maintenance requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// Get handles GET /api/maintenance/{id}
func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		utils.ResponseBadRequest(w, "Request ID is required", nil)
		return
	}

	maintenance, err := h.service.GetRequest(r.Context(), requestID)
	if err != nil {
		handleServiceError(w, h.log, err, "get maintenance request")
		return
	}

	utils.ResponseSuccess(w, "success", maintenance)
}

// Create handles POST /api/maintenance. Any authenticated user can file a
// request for a property.
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	maintenance, err := h.service.CreateRequest(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create maintenance request")
		return
	}

	utils.ResponseCreated(w, "success", maintenance)
}

// Update handles PUT /api/maintenance/{id} (staff only)
func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		utils.ResponseBadRequest(w, "Request ID is required", nil)
		return
	}

	var req request.UpdateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	maintenance, err := h.service.UpdateRequest(r.Context(), requestID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update maintenance request")
		return
	}

	utils.ResponseSuccess(w, "success", maintenance)
}

package adaptor

import (
	"net/http"
	"strings"

	"property-hub/internal/dto/request"
	"property-hub/internal/usecase"
	"property-hub/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Property    *PropertyHandler
	Tenant      *TenantHandler
	Payment     *PaymentHandler
	Paystack    *PaystackHandler
	Maintenance *MaintenanceHandler
	Dashboard   *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Property:    NewPropertyHandler(service.Property, log),
		Tenant:      NewTenantHandler(service.Tenant, log),
		Payment:     NewPaymentHandler(service.Payment, log),
		Paystack:    NewPaystackHandler(service.Paystack, log),
		Maintenance: NewMaintenanceHandler(service.Maintenance, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
	}
}

// parsePagination reads the page/per_page query parameters with defaults.
func parsePagination(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// handleServiceError maps service errors onto HTTP responses by message
// shape, shared by the CRUD handlers.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "already"):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

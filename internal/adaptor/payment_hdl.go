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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// List handles GET /api/payments (staff only)
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := &request.ListPaymentsRequest{
		PaginatedRequest: parsePagination(r),
		Status:           r.URL.Query().Get("status"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// ListMine handles GET /api/payments/me, a tenant's own payment history.
func (h *PaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := parsePagination(r)

	payments, err := h.service.ListTenantPayments(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list own payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// Get handles GET /api/payments/{id} (staff only)
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), paymentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// Create handles POST /api/payments (staff only)
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// Update handles PUT /api/payments/{id} (staff only)
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.UpdatePayment(r.Context(), paymentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// MarkOverdue handles POST /api/payments/mark-overdue (staff only). It
// flips every pending payment whose due date has passed.
func (h *PaymentHandler) MarkOverdue(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.MarkOverduePayments(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "mark overdue payments")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int64{"updated": count})
}

package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"property-hub/internal/dto/request"
	"property-hub/internal/usecase"
	"property-hub/pkg/gateway"

	"go.uber.org/zap"
)

// PaystackHandler exposes the checkout endpoints consumed by the frontend
// payment flow. These endpoints speak the gateway contract directly: a flat
// JSON body on success and {"error": "..."} on failure, not the envelope the
// rest of the API uses.
type PaystackHandler struct {
	service usecase.PaystackService
	log     *zap.Logger
}

func NewPaystackHandler(service usecase.PaystackService, log *zap.Logger) *PaystackHandler {
	return &PaystackHandler{
		service: service,
		log:     log.With(zap.String("handler", "paystack")),
	}
}

func writeGatewayJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeGatewayError(w http.ResponseWriter, code int, message string) {
	writeGatewayJSON(w, code, map[string]string{"error": message})
}

// Initialize handles POST /api/payments/initialize
func (h *PaystackHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req request.InitializePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	data, err := h.service.InitializePayment(r.Context(), &req)
	if err != nil {
		h.handleGatewayError(w, err, "initialize payment")
		return
	}

	writeGatewayJSON(w, http.StatusOK, data)
}

// Verify handles POST /api/payments/verify
func (h *PaystackHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A declined or abandoned transaction still answers 200: the request
	// worked, the payment did not.
	result, err := h.service.VerifyPayment(r.Context(), &req)
	if err != nil {
		h.handleGatewayError(w, err, "verify payment")
		return
	}

	writeGatewayJSON(w, http.StatusOK, result)
}

func (h *PaystackHandler) handleGatewayError(w http.ResponseWriter, err error, operation string) {
	var gwErr *gateway.Error

	switch {
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		h.log.Error("Paystack secret key is not configured",
			zap.String("operation", operation))
		writeGatewayError(w, http.StatusInternalServerError, err.Error())

	case errors.As(err, &gwErr):
		h.log.Warn("Paystack rejected the request",
			zap.Error(err),
			zap.String("operation", operation))
		writeGatewayError(w, http.StatusBadRequest, gwErr.Message)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		writeGatewayError(w, http.StatusBadRequest, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		writeGatewayError(w, http.StatusInternalServerError, "Internal server error")
	}
}

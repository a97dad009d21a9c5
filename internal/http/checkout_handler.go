package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saylla/ponto-eletronico-shop/internal/cart"
	"github.com/saylla/ponto-eletronico-shop/internal/checkout"
	"github.com/saylla/ponto-eletronico-shop/internal/domain"
	"github.com/saylla/ponto-eletronico-shop/internal/pricing"
)

type CheckoutHandler struct {
	sessions *checkout.Sessions
	carts    cart.Store
}

func NewCheckoutHandler(sessions *checkout.Sessions, carts cart.Store) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, carts: carts}
}

type SetFieldsRequestDTO struct {
	Fields map[string]string `json:"fields"`
}

type SetPaymentMethodRequestDTO struct {
	Method domain.PaymentMethod `json:"method"`
}

type CheckoutStateDTO struct {
	Status        string               `json:"status"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Error         string               `json:"error,omitempty"`
	ErrorCode     string               `json:"error_code,omitempty"`
}

func checkoutState(sess *checkout.Session) CheckoutStateDTO {
	status, failure := sess.Pipeline.Status()
	dto := CheckoutStateDTO{
		Status:        status.String(),
		PaymentMethod: sess.Form.PaymentMethod,
	}
	if failure != nil {
		dto.Error = failure.Error()
		dto.ErrorCode = validationErrorCode(failure)
	}
	return dto
}

func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, checkout.ErrMissingAddressFields):
		return "missing_address_fields"
	case errors.Is(err, checkout.ErrMissingCardFields):
		return "missing_card_fields"
	case errors.Is(err, checkout.ErrSubmissionFailed):
		return "submission_failed"
	}
	return "validation_failed"
}

// POST /api/v1/checkout
//
// Enters checkout: reuses the active session or starts a fresh one when the
// previous checkout already succeeded.
func (h *CheckoutHandler) Enter(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess := h.sessions.Enter(user.ID)
	respondJSON(w, http.StatusCreated, checkoutState(sess))
}

// PUT /api/v1/checkout/fields
func (h *CheckoutHandler) SetFields(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req SetFieldsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := h.sessions.Enter(user.ID)
	if status, _ := sess.Pipeline.Status(); status == domain.SubmissionSubmitting {
		respondError(w, http.StatusConflict, "submission_in_flight", "checkout is being processed")
		return
	}

	for path, value := range req.Fields {
		if err := sess.Form.SetField(path, value); err != nil {
			respondError(w, http.StatusBadRequest, "unknown_field", "unknown form field: "+path)
			return
		}
	}

	respondJSON(w, http.StatusOK, checkoutState(sess))
}

// PUT /api/v1/checkout/payment-method
func (h *CheckoutHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req SetPaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := h.sessions.Enter(user.ID)
	if status, _ := sess.Pipeline.Status(); status == domain.SubmissionSubmitting {
		respondError(w, http.StatusConflict, "submission_in_flight", "checkout is being processed")
		return
	}

	if err := sess.Form.SetPaymentMethod(req.Method); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "unknown payment method")
		return
	}

	respondJSON(w, http.StatusOK, checkoutState(sess))
}

// POST /api/v1/checkout/submit
//
// Kicks off the submission pipeline against the current cart. Validation
// failures come back as 422 and leave the session FAILED until the client
// acknowledges them; a passing submit answers 202 while the simulated
// processing runs. Re-entrant submits are no-ops reporting the in-flight
// status.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	items := h.carts.Items(user.ID)
	if len(items) == 0 {
		respondError(w, http.StatusConflict, "empty_cart", "cart is empty, nothing to checkout")
		return
	}

	sess := h.sessions.Enter(user.ID)
	status, err := sess.Pipeline.Submit(items, pricing.ComputeSnapshot(items))

	// Report the status reached synchronously, not a re-read: the simulated
	// processing may already have resolved by the time we respond.
	dto := CheckoutStateDTO{Status: status.String(), PaymentMethod: sess.Form.PaymentMethod}
	if err != nil {
		dto.Error = err.Error()
		dto.ErrorCode = validationErrorCode(err)
	}

	switch {
	case err != nil:
		respondJSON(w, http.StatusUnprocessableEntity, dto)
	case status == domain.SubmissionSubmitting:
		respondJSON(w, http.StatusAccepted, dto)
	default:
		respondJSON(w, http.StatusOK, dto)
	}
}

// GET /api/v1/checkout
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess, ok := h.sessions.Current(user.ID)
	if !ok {
		respondJSON(w, http.StatusOK, CheckoutStateDTO{
			Status:        domain.SubmissionIdle.String(),
			PaymentMethod: domain.PaymentMethodCreditCard,
		})
		return
	}

	respondJSON(w, http.StatusOK, checkoutState(sess))
}

// POST /api/v1/checkout/ack
//
// Acknowledges a displayed failure, returning the pipeline to IDLE so the
// user can correct the form and resubmit.
func (h *CheckoutHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	if sess, ok := h.sessions.Current(user.ID); ok {
		sess.Pipeline.Acknowledge()
		respondJSON(w, http.StatusOK, checkoutState(sess))
		return
	}

	respondJSON(w, http.StatusOK, CheckoutStateDTO{
		Status:        domain.SubmissionIdle.String(),
		PaymentMethod: domain.PaymentMethodCreditCard,
	})
}

// DELETE /api/v1/checkout
func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	h.sessions.Abandon(user.ID)
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platefront/checkout/internal/adapter/gateway"
	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/flow"
	"github.com/platefront/checkout/internal/server/http/dto"
)

// CheckoutHandler manages checkout flow endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Place handles POST /api/checkout/place.
func (h *CheckoutHandler) Place(c *gin.Context) {
	var req dto.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Redirect: flow.RedirectCart,
			Message:  "Invalid request body",
		})
		return
	}

	handoff, err := h.facade.Place(c.Request.Context(), CurrentToken(c), req.Address, req.Items)
	if err != nil {
		c.JSON(placeStatus(err), dto.ErrorResponse{
			Redirect: flow.RedirectForError(err),
			Message:  flow.UserMessage(err),
		})
		return
	}

	response := dto.PlaceResponse{
		Success:     true,
		AttemptID:   handoff.AttemptID,
		OrderID:     handoff.OrderID,
		Subtotal:    handoff.Subtotal,
		DeliveryFee: handoff.DeliveryFee,
		Amount:      handoff.Amount,
	}
	if handoff.Session != nil {
		cfg := handoff.Session.Config()
		response.Session = dto.SessionResponse{
			Key:         cfg.Key,
			Amount:      cfg.Amount,
			Currency:    cfg.Currency,
			OrderID:     cfg.OrderID,
			Name:        cfg.Name,
			Description: cfg.Description,
		}
	}
	c.JSON(http.StatusOK, response)
}

func placeStatus(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrOrderSubmissionFailed),
		errors.Is(err, domainErrors.ErrGatewayScriptLoadFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Callback handles POST /api/checkout/callback/:attemptID.
func (h *CheckoutHandler) Callback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Redirect: flow.RedirectCart,
			Message:  "Invalid request body",
		})
		return
	}

	payload := gateway.CallbackPayload{
		PaymentID:      req.PaymentID,
		GatewayOrderID: req.OrderID,
		Signature:      req.Signature,
	}
	redirect, err := h.facade.Callback(c.Request.Context(), c.Param("attemptID"), payload)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Redirect: flow.RedirectForError(err),
				Message:  flow.UserMessage(err),
			})
		case errors.Is(err, domainErrors.ErrAttemptFinished):
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Redirect: flow.RedirectHome,
				Message:  flow.UserMessage(err),
			})
		case errors.Is(err, domainErrors.ErrIncompletePaymentPayload):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Redirect: flow.RedirectForError(err),
				Message:  flow.UserMessage(err),
			})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Redirect: flow.RedirectForError(err),
				Message:  flow.UserMessage(err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CallbackResponse{Success: true, Redirect: redirect})
}

// Verify handles GET /api/checkout/verify.
func (h *CheckoutHandler) Verify(c *gin.Context) {
	req := flow.ParseVerificationQuery(c.Request.URL.Query())

	outcome, err := h.facade.Verify(c.Request.Context(), req)
	if outcome == nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Redirect: flow.RedirectForError(err),
			Message:  flow.UserMessage(err),
		})
		return
	}

	c.JSON(verifyStatus(err), dto.VerifyResponse{
		Success:  err == nil,
		Redirect: outcome.Redirect,
		Message:  outcome.Message,
	})
}

func verifyStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domainErrors.ErrMissingVerificationParameters):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrVerificationFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrVerificationRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Health handles GET /api/health.
func (h *CheckoutHandler) Health(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handlers

import (
	"makecut/internal/domain/dto"
	"makecut/internal/infrastructure/billing"
	"makecut/internal/usecases"
	"makecut/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type BillingHandler struct {
	checkoutService usecases.CheckoutService
	webhookSecret   []byte
}

func NewBillingHandler(checkoutService usecases.CheckoutService, webhookSecret string) *BillingHandler {
	return &BillingHandler{
		checkoutService: checkoutService,
		webhookSecret:   []byte(webhookSecret),
	}
}

// CreateCheckoutSession
//
// @Summary      Create Checkout Session
// @Description  Creates a checkout session at the payment provider and returns its redirect URL
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateCheckoutSessionRequestDTO true "Email and plan"
// @Success      200      {object}  dto.CheckoutSessionResponse
// @Failure      400      {object}  errors.ErrorResponse
// @Failure      500      {object}  errors.ErrorResponse
// @Router       /api/create-checkout-session [post]
func (h *BillingHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req dto.CreateCheckoutSessionRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidRequest("Could not parse request body"))
	}

	response, err := h.checkoutService.CreateSession(c.Context(), req.Email, req.Plan)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// GetCheckoutSession
//
// @Summary      Get Checkout Session
// @Description  Looks up a checkout session at the payment provider
// @Tags         Billing
// @Produce      json
// @Param        id   path      string true "Session id"
// @Success      200  {object}  dto.CheckoutSessionResponse
// @Failure      500  {object}  errors.ErrorResponse
// @Router       /api/checkout-session/{id} [get]
func (h *BillingHandler) GetCheckoutSession(c *fiber.Ctx) error {
	response, err := h.checkoutService.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// Webhook
//
// @Summary      Payment Webhook
// @Description  Receives signed events from the payment provider
// @Tags         Billing
// @Accept       plain
// @Produce      json
// @Success      200  {object}  dto.WebhookResponse
// @Failure      400  {object}  errors.ErrorResponse
// @Router       /api/webhook [post]
func (h *BillingHandler) Webhook(c *fiber.Ctx) error {
	event, err := billing.VerifyEvent(string(c.Body()), h.webhookSecret)
	if err != nil {
		return errors.HandleError(c, errors.ErrInvalidRequest("Webhook event rejected: "+err.Error()))
	}

	if err := h.checkoutService.HandleEvent(event); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.WebhookResponse{Received: true})
}

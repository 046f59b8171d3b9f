package routers

import (
	"makecut/internal/delivery/http/handlers"
	"makecut/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupBillingRoutes(app *fiber.App, checkoutService usecases.CheckoutService, webhookSecret string) {
	billingHandler := handlers.NewBillingHandler(checkoutService, webhookSecret)

	api := app.Group("/api")
	api.Post("/create-checkout-session", billingHandler.CreateCheckoutSession)
	api.Get("/checkout-session/:id", billingHandler.GetCheckoutSession)
	api.Post("/webhook", billingHandler.Webhook)
}

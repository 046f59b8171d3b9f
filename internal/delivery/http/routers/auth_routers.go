package routers

import (
	"makecut/internal/delivery/http/handlers"
	"makecut/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, accountService usecases.AccountService) {
	authHandler := handlers.NewAuthHandler(accountService)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
}

package routers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/handlers"
)

func SetupUserRoutes(app *fiber.App, userHandler *handlers.UserHandler) {
	api := app.Group("/api/v1")
	api.Post("/users", userHandler.CreateUser)
	api.Post("/users/signup", userHandler.SignUp)
	api.Post("/users/login", userHandler.Login)
	api.Post("/users/token/validate", userHandler.ValidateToken)
}

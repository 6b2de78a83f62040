package routers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/handlers"
)

func SetupUploadRoutes(app *fiber.App, uploadHandler *handlers.UploadHandler, auth fiber.Handler) {
	api := app.Group("/api/v1", auth)
	api.Post("/upload/presigned-url", uploadHandler.GetPresignedURL)
}

package routers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/handlers"
)

func SetupVideoRoutes(app *fiber.App, videoHandler *handlers.VideoHandler, auth fiber.Handler) {
	api := app.Group("/api/v1", auth)
	api.Get("/videos", videoHandler.ListVideos)
	api.Patch("/videos/:id", videoHandler.UpdateVideo)
	api.Get("/videos/:id/zip", videoHandler.GetZipURL)
}

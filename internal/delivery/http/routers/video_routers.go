package routers

import (
	"makecut/internal/delivery/http/handlers"
	"makecut/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App, videoService usecases.VideoService) {
	videoHandler := handlers.NewVideoHandler(videoService)

	api := app.Group("/api")
	api.Post("/upload", videoHandler.Upload)
	api.Post("/cut-video", videoHandler.CutVideo)
	api.Post("/cut-video-multiple", videoHandler.CutVideoMultiple)
	api.Post("/video-info", videoHandler.VideoInfo)
	api.Post("/generate-subtitles", videoHandler.GenerateSubtitles)
}

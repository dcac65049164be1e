package events

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEventsAPI)

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", CreateEventAPI)
	admin.Delete("/:id", DeleteEventAPI)
}

package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func SetupResultsRoutes(app *fiber.App) {
	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)
	api.Get("/grade", GetGradeAPI)
}

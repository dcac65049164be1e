package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", auth.RoleMiddleware(models.RoleAdmin, models.RoleBursar), GetDashboardStatsAPI)
}

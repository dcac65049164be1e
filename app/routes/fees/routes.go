package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleBursar))
	api.Get("/stats", GetFeeStatsAPI)
	api.Get("/student/:studentId", GetStudentFeesAPI)
	api.Get("/student/:studentId/standing", GetFeeStandingAPI)
	api.Post("/", CreateFeeAPI)
	api.Post("/:id/payments", RecordPaymentAPI)
}

package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTeachersAPI)

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", CreateTeacherAPI)
	admin.Delete("/:id", DeactivateTeacherAPI)
}

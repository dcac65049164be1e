package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleBursar, models.RoleTeacher), GetStudentsAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleBursar), CreateStudentAPI)
	api.Get("/:id/dashboard", GetStudentDashboardAPI)
}

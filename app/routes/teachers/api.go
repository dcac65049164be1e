package teachers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

var validate = validator.New()

// GetTeachersAPI returns the active roster as a bare array; the expense
// view consumes it directly.
func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetActiveTeachers(c.UserContext(), config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to load teachers",
		})
	}
	return c.JSON(teachers)
}

// CreateTeacherAPI registers a teaching staff member as a user with the
// teacher role.
func CreateTeacherAPI(c *fiber.Ctx) error {
	type CreateTeacherRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Phone     string `json:"phone"`
	}

	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := database.CreateUser(config.GetDB(), user, models.RoleTeacher); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create teacher"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

// DeactivateTeacherAPI retires a teacher; the ledger stops synthesizing
// salary obligations for them on the next pass.
func DeactivateTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeactivateTeacher(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to deactivate teacher"})
	}
	return c.JSON(fiber.Map{"success": true})
}

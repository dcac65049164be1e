package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/access"
	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/grading"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to load students",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": students})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create student"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": student})
}

// canViewDashboard decides who may read a student's dashboard. Staff see
// every student; a student-portal account is provisioned with the
// student's own ID and sees only that one.
func canViewDashboard(user *models.User, studentID string) bool {
	if user == nil {
		return false
	}
	if user.HasRole(models.RoleAdmin) || user.HasRole(models.RoleBursar) || user.HasRole(models.RoleTeacher) {
		return true
	}
	return user.ID == studentID
}

// GetStudentDashboardAPI serves the student portal's landing data. The
// access policy runs first: a student with an unpaid admission fee or a
// balance over the threshold gets the restricted payload and nothing
// academic.
func GetStudentDashboardAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	user, _ := c.Locals("user").(*models.User)
	if !canViewDashboard(user, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	db := config.GetDB()
	student, err := database.GetStudentByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load student"})
	}

	standing, err := database.GetFeeStanding(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load fee standing"})
	}

	decision := access.Evaluate(standing.Balance, standing.AdmissionPending, config.AppConfig.FeeRestrictionThreshold)
	if decision.IsRestricted() {
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"restricted": true,
				"reason":     decision.Reason(),
				"message":    decision.Reason().Message(),
				"balance":    standing.Balance,
			},
		})
	}

	fees, err := database.GetFeesByStudent(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load fees"})
	}

	events, err := database.GetEvents(db, true)
	if err != nil {
		// Events are decoration on this view; serve the rest.
		events = nil
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"restricted": false,
			"student":    student,
			"grade_tier": grading.TierForClass(student.ClassName),
			"fees":       fees,
			"balance":    standing.Balance,
			"events":     events,
		},
	})
}

package fees

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

var validate = validator.New()

func GetStudentFeesAPI(c *fiber.Ctx) error {
	fees, err := database.GetFeesByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load fees"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fees})
}

func GetFeeStandingAPI(c *fiber.Ctx) error {
	standing, err := database.GetFeeStanding(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load fee standing"})
	}
	return c.JSON(fiber.Map{"success": true, "data": standing})
}

func CreateFeeAPI(c *fiber.Ctx) error {
	var fee models.Fee
	if err := c.BodyParser(&fee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(fee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.CreateFee(config.GetDB(), &fee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create fee"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fee})
}

// RecordPaymentAPI applies a payment against a fee. Clearing the last of
// a student's balance lifts their dashboard restriction on the next
// policy evaluation.
func RecordPaymentAPI(c *fiber.Ctx) error {
	type PaymentRequest struct {
		Amount int64 `json:"amount" validate:"required,gt=0"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	fee, err := database.RecordFeePayment(config.GetDB(), c.Params("id"), req.Amount, time.Now())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Fee not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": fee})
}

func GetFeeStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetFeeStats(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load fee stats"})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

package results

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/grading"
)

// GetGradeAPI grades a percentage for a class. The class resolves to an
// enumerated tier; each tier has its own threshold table.
func GetGradeAPI(c *fiber.Ctx) error {
	className := c.Query("class")
	if className == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "class is required"})
	}

	pct, err := strconv.ParseFloat(c.Query("percentage"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "percentage must be a number"})
	}
	if pct < 0 || pct > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "percentage must be between 0 and 100"})
	}

	tier := grading.TierForClass(className)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"class":      className,
			"tier":       tier,
			"percentage": pct,
			"grade":      grading.GradeFor(tier, pct),
		},
	})
}

package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
)

// GetDashboardStatsAPI returns the admin dashboard statistics.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch dashboard statistics",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

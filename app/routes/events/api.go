package events

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func GetEventsAPI(c *fiber.Ctx) error {
	upcomingOnly := c.QueryBool("upcoming")
	events, err := database.GetEvents(config.GetDB(), upcomingOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load events"})
	}
	return c.JSON(fiber.Map{"success": true, "data": events})
}

func CreateEventAPI(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if event.Title == "" || event.StartDate.IsZero() || event.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Title, start_date and end_date are required"})
	}
	if event.Audience == "" {
		event.Audience = "all"
	}

	if err := database.CreateEvent(config.GetDB(), &event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create event"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": event})
}

func DeleteEventAPI(c *fiber.Ctx) error {
	if err := database.DeleteEvent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete event"})
	}
	return c.JSON(fiber.Map{"success": true})
}

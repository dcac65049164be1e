package contact

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/services/email"
)

// Handler forwards contact-form submissions to the school office inbox.
// With no mailer configured it runs in dev mode: the message is logged
// and the caller still gets a 200, flagged devMode.
type Handler struct {
	mailer   email.Service
	from     string
	to       string
	devMode  bool
	validate *validator.Validate
}

func NewHandler(mailer email.Service, from, to string, devMode bool) *Handler {
	return &Handler{
		mailer:   mailer,
		from:     from,
		to:       to,
		devMode:  devMode,
		validate: validator.New(),
	}
}

func (h *Handler) SendContactEmail(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := h.validate.Struct(msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "name, email, subject and message are required",
		})
	}

	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\nClass: %s\n\n%s",
		msg.Name, msg.Email, msg.Phone, msg.StudentClass, msg.Message)

	if h.devMode {
		log.Printf("contact form (dev mode, no mail credentials): subject=%q\n%s", msg.Subject, body)
		return c.JSON(fiber.Map{"success": true, "devMode": true})
	}

	err := h.mailer.Send(c.UserContext(), email.Message{
		From:    h.from,
		To:      h.to,
		ReplyTo: msg.Email,
		Subject: "[Contact] " + msg.Subject,
		Body:    body,
	})
	if err != nil {
		log.Printf("contact form delivery failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

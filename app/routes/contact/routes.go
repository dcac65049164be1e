package contact

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/services/email"
)

// SetupContactRoutes wires the public contact form. The endpoint is
// unauthenticated: prospective parents use it before they have accounts.
func SetupContactRoutes(app *fiber.App) {
	mail := config.AppConfig.Mail

	var mailer email.Service
	devMode := mail.SendGridKey == ""
	if devMode {
		mailer = email.NewConsoleService()
	} else {
		mailer = email.NewSendGridService(mail.SendGridKey)
	}

	h := NewHandler(mailer, mail.From, mail.ContactTo, devMode)
	app.Post("/api/contact", h.SendContactEmail)
}

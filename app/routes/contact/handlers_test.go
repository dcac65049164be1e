package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HussainIjaz209/OKS-sub001/app/services/email"
)

type stubMailer struct {
	sent []email.Message
	err  error
}

func (s *stubMailer) Send(_ context.Context, msg email.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func newTestApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Post("/api/contact", h.SendContactEmail)
	return app
}

func postContact(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

const validBody = `{"name":"Jane Doe","email":"jane@example.com","subject":"Admissions","message":"When does term start?"}`

func TestSendContactEmail(t *testing.T) {
	t.Run("delivers via mailer", func(t *testing.T) {
		mailer := &stubMailer{}
		app := newTestApp(NewHandler(mailer, "noreply@oakside.test", "office@oakside.test", false))

		status, payload := postContact(t, app, validBody)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, payload["success"])

		require.Len(t, mailer.sent, 1)
		msg := mailer.sent[0]
		assert.Equal(t, "office@oakside.test", msg.To)
		assert.Equal(t, "jane@example.com", msg.ReplyTo)
		assert.Equal(t, "[Contact] Admissions", msg.Subject)
		assert.Contains(t, msg.Body, "When does term start?")
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		mailer := &stubMailer{}
		app := newTestApp(NewHandler(mailer, "noreply@oakside.test", "office@oakside.test", false))

		status, payload := postContact(t, app, `{"name":"Jane Doe"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, payload["success"])
		assert.Empty(t, mailer.sent)
	})

	t.Run("dev mode skips sending", func(t *testing.T) {
		mailer := &stubMailer{}
		app := newTestApp(NewHandler(mailer, "noreply@oakside.test", "office@oakside.test", true))

		status, payload := postContact(t, app, validBody)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, true, payload["devMode"])
		assert.Empty(t, mailer.sent)
	})

	t.Run("delivery failure surfaces error", func(t *testing.T) {
		mailer := &stubMailer{err: errors.New("sendgrid: 401 unauthorized")}
		app := newTestApp(NewHandler(mailer, "noreply@oakside.test", "office@oakside.test", false))

		status, payload := postContact(t, app, validBody)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "sendgrid: 401 unauthorized", payload["error"])
	})
}

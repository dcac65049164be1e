package expenses

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
)

// newMutationTestApp wires the mutation handlers over a service with no
// database. Every case here must be rejected by request validation, before
// any storage call.
func newMutationTestApp() *fiber.App {
	h := NewHandler(NewService(nil, ledger.NewSynthesizer(0)))

	app := fiber.New()
	app.Put("/api/expenses/:id", h.UpdateExpenseAPI)
	app.Post("/api/expenses/:id/pay", h.PayExpenseAPI)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestPayExpenseAPIRejectsBadBody(t *testing.T) {
	app := newMutationTestApp()

	t.Run("negative amount", func(t *testing.T) {
		status := doJSON(t, app, "POST", "/api/expenses/some-id/pay", `{"amount":-5000}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("unknown category", func(t *testing.T) {
		status := doJSON(t, app, "POST", "/api/expenses/some-id/pay", `{"category":"Snacks"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("negative amount on virtual row", func(t *testing.T) {
		status := doJSON(t, app, "POST", "/api/expenses/"+ledger.VirtualRentID+"/pay", `{"amount":-1}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("malformed json", func(t *testing.T) {
		status := doJSON(t, app, "POST", "/api/expenses/some-id/pay", `{"amount":`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestUpdateExpenseAPIRejectsBadBody(t *testing.T) {
	app := newMutationTestApp()

	t.Run("negative amount", func(t *testing.T) {
		status := doJSON(t, app, "PUT", "/api/expenses/some-id", `{"amount":-5000}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("unknown category", func(t *testing.T) {
		status := doJSON(t, app, "PUT", "/api/expenses/some-id", `{"category":"Snacks"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

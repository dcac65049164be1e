package expenses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

// SetupExpensesRoutes wires the ledger API. Only finance staff can see or
// mutate the school's expense book.
func SetupExpensesRoutes(app *fiber.App, db *sql.DB, rentAmount int64) *Service {
	svc := NewService(db, ledger.NewSynthesizer(rentAmount))
	h := NewHandler(svc)

	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleBursar))
	api.Get("/", h.GetExpensesAPI)
	api.Get("/stats", h.GetExpenseStatsAPI)
	api.Post("/", h.CreateExpenseAPI)
	api.Put("/:id", h.UpdateExpenseAPI)
	api.Post("/:id/pay", h.PayExpenseAPI)
	api.Delete("/:id", h.DeleteExpenseAPI)

	return svc
}

package expenses

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// Handler serves the expense ledger API. The clock is injected so tests
// can pin "today".
type Handler struct {
	svc      *Service
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		now:      time.Now,
	}
}

// GetExpensesAPI returns the merged ledger: persisted rows matching the
// filter plus any synthesized obligations, with the pending total
// recomputed over the merged view.
func (h *Handler) GetExpensesAPI(c *fiber.Ctx) error {
	f, err := ParseFilter(c.Query("category"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	snap, err := h.svc.LoadSnapshot(c.UserContext(), f, h.now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to load expenses",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"data":          snap.Entries,
		"pending_total": snap.PendingTotal,
	})
}

// GetExpenseStatsAPI returns the persisted-rows aggregate. It knows
// nothing about virtual rows; the listing's pending_total is the
// authoritative pending figure.
func (h *Handler) GetExpenseStatsAPI(c *fiber.Ctx) error {
	stats, err := h.svc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to load expense stats",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func (h *Handler) CreateExpenseAPI(c *fiber.Ctx) error {
	var draft ledger.NewExpenseDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := h.validate.Struct(draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if !draft.Category.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Unknown category"})
	}

	p := draft.Payload()
	created, err := h.svc.Execute(ledger.Operation{Kind: ledger.OpCreate, Payload: &p})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create expense"})
	}

	return h.respondWithFreshLedger(c, fiber.StatusCreated, created)
}

// UpdateExpenseAPI patches a persisted row, or materializes a virtual one
// when the ID is synthetic.
func (h *Handler) UpdateExpenseAPI(c *fiber.Ctx) error {
	var edit ledger.EditExpenseDraft
	if err := c.BodyParser(&edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := h.validate.Struct(edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if edit.Category != nil && !edit.Category.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Unknown category"})
	}

	return h.mutate(c, ledger.ActionEdit, &edit)
}

// PayExpenseAPI settles a row: status goes to Paid on a persisted row, a
// virtual row materializes as Paid. The optional body can patch fields in
// the same step, which is how a zero-amount salary row gets its figure.
func (h *Handler) PayExpenseAPI(c *fiber.Ctx) error {
	var edit ledger.EditExpenseDraft
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&edit); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}
		if err := h.validate.Struct(edit); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		if edit.Category != nil && !edit.Category.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Unknown category"})
		}
	}
	return h.mutate(c, ledger.ActionPay, &edit)
}

func (h *Handler) DeleteExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	// Reject before any storage lookup: a virtual row has nothing to
	// delete.
	if ledger.IsVirtualID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": ledger.ErrVirtualDelete.Error(),
		})
	}

	row, err := GetExpenseByID(h.svc.db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load expense"})
	}

	op, err := ledger.Dispatch(ledger.ActionDelete, row, nil)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if _, err := h.svc.Execute(op); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete expense"})
	}

	return h.respondWithFreshLedger(c, fiber.StatusOK, nil)
}

// mutate resolves the target row, dispatches the action and responds with
// a freshly loaded merged ledger. Materializing a row changes which
// obligations are still missing, so a full resynthesis is the only
// correct refresh.
func (h *Handler) mutate(c *fiber.Ctx, action ledger.Action, edit *ledger.EditExpenseDraft) error {
	id := c.Params("id")

	row, err := h.resolveRow(c, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load expense"})
	}

	op, err := ledger.Dispatch(action, row, edit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	result, err := h.svc.Execute(op)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to save expense"})
	}

	return h.respondWithFreshLedger(c, fiber.StatusOK, result)
}

// resolveRow finds the mutation target. Synthetic IDs are looked up in a
// fresh synthesis pass; if the obligation has been materialized in the
// meantime the ID no longer resolves, which is exactly the idempotency
// the synthesizer guarantees.
func (h *Handler) resolveRow(c *fiber.Ctx, id string) (*models.Expense, error) {
	if !ledger.IsVirtualID(id) {
		return GetExpenseByID(h.svc.db, id)
	}

	snap, err := h.svc.LoadSnapshot(c.UserContext(), ledger.Filter{}, h.now())
	if err != nil {
		return nil, err
	}
	if row := ledger.Find(snap.Entries, id); row != nil {
		return row, nil
	}
	return nil, sql.ErrNoRows
}

func (h *Handler) respondWithFreshLedger(c *fiber.Ctx, status int, mutated *models.Expense) error {
	snap, err := h.svc.LoadSnapshot(c.UserContext(), ledger.Filter{}, h.now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Mutation applied but reload failed",
		})
	}

	resp := fiber.Map{
		"success":       true,
		"data":          snap.Entries,
		"pending_total": snap.PendingTotal,
	}
	if mutated != nil {
		resp["expense"] = mutated
	}
	return c.Status(status).JSON(resp)
}

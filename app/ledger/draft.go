package ledger

import (
	"time"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// Payload is the exact shape handed to the persistence layer when a row is
// created or replaced. It has no ID field and no virtual marker, so
// internal bookkeeping can never leak into storage.
type Payload struct {
	Title       string                 `json:"title"`
	Category    models.ExpenseCategory `json:"category"`
	Amount      int64                  `json:"amount"`
	Payee       string                 `json:"payee"`
	TeacherID   *string                `json:"teacher_id,omitempty"`
	Date        time.Time              `json:"date"`
	Method      models.PaymentMethod   `json:"method"`
	Status      models.ExpenseStatus   `json:"status"`
	Description string                 `json:"description,omitempty"`
}

// NewExpenseDraft is a user-entered expense that has no prior row.
type NewExpenseDraft struct {
	Title       string                 `json:"title" validate:"required"`
	Category    models.ExpenseCategory `json:"category" validate:"required"`
	Amount      int64                  `json:"amount" validate:"gte=0"`
	Payee       string                 `json:"payee"`
	TeacherID   *string                `json:"teacher_id"`
	Date        time.Time              `json:"date" validate:"required"`
	Method      models.PaymentMethod   `json:"method"`
	Status      models.ExpenseStatus   `json:"status"`
	Description string                 `json:"description"`
}

// Payload converts the draft for persistence, defaulting blank method and
// status.
func (d NewExpenseDraft) Payload() Payload {
	p := Payload{
		Title:       d.Title,
		Category:    d.Category,
		Amount:      d.Amount,
		Payee:       d.Payee,
		TeacherID:   d.TeacherID,
		Date:        d.Date,
		Method:      d.Method,
		Status:      d.Status,
		Description: d.Description,
	}
	if p.Method == "" {
		p.Method = models.MethodCash
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	return p
}

// EditExpenseDraft is a partial patch against an existing row; nil fields
// are left untouched.
type EditExpenseDraft struct {
	Title       *string                 `json:"title"`
	Category    *models.ExpenseCategory `json:"category"`
	Amount      *int64                  `json:"amount" validate:"omitempty,gte=0"`
	Payee       *string                 `json:"payee"`
	TeacherID   *string                 `json:"teacher_id"`
	Date        *time.Time              `json:"date"`
	Method      *models.PaymentMethod   `json:"method"`
	Status      *models.ExpenseStatus   `json:"status"`
	Description *string                 `json:"description"`
}

// Apply overlays the patch on base and returns the resulting payload.
// base is not mutated.
func (d EditExpenseDraft) Apply(base *models.Expense) Payload {
	p := Payload{
		Title:       base.Title,
		Category:    base.Category,
		Amount:      base.Amount,
		Payee:       base.Payee,
		TeacherID:   base.TeacherID,
		Date:        base.Date,
		Method:      base.Method,
		Status:      base.Status,
		Description: base.Description,
	}
	if d.Title != nil {
		p.Title = *d.Title
	}
	if d.Category != nil {
		p.Category = *d.Category
	}
	if d.Amount != nil {
		p.Amount = *d.Amount
	}
	if d.Payee != nil {
		p.Payee = *d.Payee
	}
	if d.TeacherID != nil {
		p.TeacherID = d.TeacherID
	}
	if d.Date != nil {
		p.Date = *d.Date
	}
	if d.Method != nil {
		p.Method = *d.Method
	}
	if d.Status != nil {
		p.Status = *d.Status
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	return p
}

// MaterializeVirtualDraft turns a synthesized row into a create payload,
// optionally patched and optionally marked paid in the same step.
type MaterializeVirtualDraft struct {
	Row      *models.Expense
	Edit     *EditExpenseDraft
	MarkPaid bool
}

// Payload builds the persistable record for the virtual row. The
// synthetic ID and the virtual flag simply have nowhere to go.
func (d MaterializeVirtualDraft) Payload() Payload {
	var p Payload
	if d.Edit != nil {
		p = d.Edit.Apply(d.Row)
	} else {
		p = EditExpenseDraft{}.Apply(d.Row)
	}
	if d.MarkPaid {
		p.Status = models.StatusPaid
		if p.Method == models.MethodOther {
			p.Method = models.MethodCash
		}
	}
	return p
}

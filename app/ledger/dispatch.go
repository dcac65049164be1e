package ledger

import (
	"errors"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// Action is a user-initiated mutation against a ledger row.
type Action string

const (
	ActionPay    Action = "pay"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// OpKind is the storage operation an action resolves to.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// Operation is the resolved plan for one action: which storage call to
// make, against which persisted ID, with which payload.
type Operation struct {
	Kind    OpKind
	ID      string // persisted row ID; empty for creates
	Payload *Payload
}

var (
	// ErrVirtualDelete rejects deletion of a synthesized row before any
	// storage call is attempted; there is no persisted row to delete.
	ErrVirtualDelete = errors.New("virtual expense rows cannot be deleted")

	// ErrUnknownAction rejects actions outside the pay/edit/delete table.
	ErrUnknownAction = errors.New("unknown expense action")
)

// Dispatch routes an action on a row, persisted or virtual, to the
// correct storage operation:
//
//	pay    persisted -> update (status Paid)    virtual -> create, Paid
//	edit   persisted -> update (patched)        virtual -> create, patched
//	delete persisted -> delete                  virtual -> rejected
//
// Virtual rows always materialize through a create because no persisted
// row exists yet.
func Dispatch(action Action, row *models.Expense, edit *EditExpenseDraft) (Operation, error) {
	switch action {
	case ActionPay:
		if row.IsVirtual {
			p := MaterializeVirtualDraft{Row: row, Edit: edit, MarkPaid: true}.Payload()
			return Operation{Kind: OpCreate, Payload: &p}, nil
		}
		patch := EditExpenseDraft{}
		if edit != nil {
			patch = *edit
		}
		paid := models.StatusPaid
		patch.Status = &paid
		p := patch.Apply(row)
		return Operation{Kind: OpUpdate, ID: row.ID, Payload: &p}, nil

	case ActionEdit:
		if row.IsVirtual {
			p := MaterializeVirtualDraft{Row: row, Edit: edit}.Payload()
			return Operation{Kind: OpCreate, Payload: &p}, nil
		}
		patch := EditExpenseDraft{}
		if edit != nil {
			patch = *edit
		}
		p := patch.Apply(row)
		return Operation{Kind: OpUpdate, ID: row.ID, Payload: &p}, nil

	case ActionDelete:
		if row.IsVirtual {
			return Operation{}, ErrVirtualDelete
		}
		return Operation{Kind: OpDelete, ID: row.ID}, nil
	}
	return Operation{}, ErrUnknownAction
}

package models

import "time"

// Fee represents a charge against a specific student. Balance tracks the
// unpaid remainder; admission-kind fees gate the student dashboard until
// cleared.
type Fee struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required"`
	Kind      FeeKind    `json:"kind" gorm:"not null;type:varchar(20)" validate:"required"`
	Title     string     `json:"title" gorm:"not null" validate:"required"`
	Amount    int64      `json:"amount" gorm:"not null;type:bigint" validate:"gt=0"`
	Balance   int64      `json:"balance" gorm:"not null;type:bigint;default:0"`
	Paid      bool       `json:"paid" gorm:"default:false"`
	DueDate   time.Time  `json:"due_date" gorm:"not null;type:date" validate:"required"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// MarkAsPaid clears the balance and stamps the payment time.
func (f *Fee) MarkAsPaid(at time.Time) {
	f.Balance = 0
	f.Paid = true
	f.PaidAt = &at
}

// FeeStanding summarises a student's fee position as consumed by the
// dashboard access policy.
type FeeStanding struct {
	StudentID        string `json:"student_id"`
	Balance          int64  `json:"balance"`
	AdmissionPending bool   `json:"admission_pending"`
}

package models

import "time"

// Expense represents a school expense. Rows flagged IsVirtual are
// synthesized placeholders for unrecorded recurring obligations; they are
// never persisted and carry a synthetic ID until materialized.
type Expense struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string          `json:"title" gorm:"not null" validate:"required"`
	Category    ExpenseCategory `json:"category" gorm:"not null;index;type:varchar(30)" validate:"required"`
	Amount      int64           `json:"amount" gorm:"not null;type:bigint" validate:"gte=0"`
	Payee       string          `json:"payee" gorm:"not null"`
	TeacherID   *string         `json:"teacher_id,omitempty" gorm:"index;type:uuid"`
	Date        time.Time       `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Method      PaymentMethod   `json:"method" gorm:"not null;type:varchar(20)"`
	Status      ExpenseStatus   `json:"status" gorm:"not null;type:varchar(10)" validate:"required"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	IsVirtual   bool            `json:"is_virtual" gorm:"-"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
}

// IsPending reports whether the expense still represents an unsettled
// obligation.
func (e *Expense) IsPending() bool {
	return e.Status == StatusPending
}

// CategoryTotal is one row of the by-category breakdown.
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Total    int64           `json:"total"`
}

// ExpenseStats aggregates persisted expenses only. Virtual rows are a
// presentation-layer concern and never reach these numbers.
type ExpenseStats struct {
	TotalSpent   int64           `json:"total_spent"`
	TotalPending int64           `json:"total_pending"`
	ByCategory   []CategoryTotal `json:"by_category"`
}

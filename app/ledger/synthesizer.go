package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// Synthetic identifiers. They stay stable across refresh cycles while the
// same month/teacher obligation remains unresolved, so a row keeps its
// identity from one synthesis pass to the next.
const (
	VirtualRentID       = "virtual_rent"
	virtualSalaryPrefix = "virtual_salary_"
	virtualIDPrefix     = "virtual_"
)

// DefaultRentPayee is stamped on synthesized building-rent rows.
const DefaultRentPayee = "Landlord"

// IsVirtualID reports whether id names a synthesized row rather than a
// persisted one.
func IsVirtualID(id string) bool {
	return strings.HasPrefix(id, virtualIDPrefix)
}

// VirtualSalaryID returns the synthetic ID of a teacher's unpaid-salary row.
func VirtualSalaryID(teacherID string) string {
	return virtualSalaryPrefix + teacherID
}

// Filter mirrors the query parameters of the expense listing. An empty or
// "All" category matches everything.
type Filter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// MatchesCategory reports whether the filter admits rows of category c.
func (f Filter) MatchesCategory(c models.ExpenseCategory) bool {
	return f.Category == "" || f.Category == "All" || f.Category == string(c)
}

// CoversCurrentMonth reports whether the filtered window is consistent
// with "this month". Synthesis must not pollute historical views, so it
// only runs when no start date is set or the start date falls inside the
// current month.
func (f Filter) CoversCurrentMonth(now time.Time) bool {
	return f.StartDate == nil || sameMonth(*f.StartDate, now)
}

// Synthesizer derives placeholder rows for recurring obligations that have
// no persisted record in the current month. It is pure: it never mutates
// its inputs and the clock is an explicit parameter.
type Synthesizer struct {
	RentAmount int64
	RentPayee  string
}

// NewSynthesizer returns a synthesizer with the default rent obligation.
func NewSynthesizer(rentAmount int64) Synthesizer {
	if rentAmount <= 0 {
		rentAmount = 32000
	}
	return Synthesizer{RentAmount: rentAmount, RentPayee: DefaultRentPayee}
}

// Synthesize returns the virtual rows still owed for the month containing
// now, given the already-persisted expenses and the active teacher roster.
// It is idempotent within a pass: an obligation with a real current-month
// record produces no virtual row. A nil or empty roster simply yields no
// salary rows; salary synthesis is a convenience, not a correctness
// requirement.
func (s Synthesizer) Synthesize(expenses []*models.Expense, teachers []*models.Teacher, f Filter, now time.Time) []*models.Expense {
	if !f.CoversCurrentMonth(now) {
		return nil
	}

	var virtual []*models.Expense

	if f.MatchesCategory(models.CategoryBuildingRent) && !hasCurrentMonthRent(expenses, now) {
		virtual = append(virtual, s.rentRow(now))
	}

	if f.MatchesCategory(models.CategorySalary) {
		for _, t := range teachers {
			if t == nil || !t.IsActive {
				continue
			}
			if salaryRecorded(expenses, t, now) {
				continue
			}
			virtual = append(virtual, salaryRow(t, now))
		}
	}

	return virtual
}

func (s Synthesizer) rentRow(now time.Time) *models.Expense {
	return &models.Expense{
		ID:          VirtualRentID,
		Title:       fmt.Sprintf("Building Rent for %s", now.Format("January 2006")),
		Category:    models.CategoryBuildingRent,
		Amount:      s.RentAmount,
		Payee:       s.RentPayee,
		Date:        now,
		Method:      models.MethodOther,
		Status:      models.StatusPending,
		Description: "Recurring monthly rent, not yet recorded",
		IsVirtual:   true,
	}
}

// salaryRow carries amount 0 on purpose: the bursar fills the figure in
// when materializing the payment.
func salaryRow(t *models.Teacher, now time.Time) *models.Expense {
	id := t.ID
	return &models.Expense{
		ID:          VirtualSalaryID(t.ID),
		Title:       fmt.Sprintf("Salary Payout: %s", t.FullName()),
		Category:    models.CategorySalary,
		Amount:      0,
		Payee:       t.FullName(),
		TeacherID:   &id,
		Date:        now,
		Method:      models.MethodOther,
		Status:      models.StatusPending,
		Description: fmt.Sprintf("Salary for %s, not yet recorded", now.Format("January 2006")),
		IsVirtual:   true,
	}
}

func hasCurrentMonthRent(expenses []*models.Expense, now time.Time) bool {
	for _, e := range expenses {
		if e.Category == models.CategoryBuildingRent && sameMonth(e.Date, now) {
			return true
		}
	}
	return false
}

// salaryRecorded matches either by teacher reference or by payee name,
// since older rows were entered with the payee string only.
func salaryRecorded(expenses []*models.Expense, t *models.Teacher, now time.Time) bool {
	name := t.FullName()
	for _, e := range expenses {
		if e.Category != models.CategorySalary || !sameMonth(e.Date, now) {
			continue
		}
		if e.TeacherID != nil && *e.TeacherID == t.ID {
			return true
		}
		if e.Payee == name {
			return true
		}
	}
	return false
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

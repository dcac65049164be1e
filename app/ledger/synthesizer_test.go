package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func teacher(id, first, last string) *models.Teacher {
	return &models.Teacher{ID: id, FirstName: first, LastName: last, IsActive: true}
}

func paidSalary(teacherID, payee string, amount int64, date time.Time) *models.Expense {
	e := &models.Expense{
		ID:       "exp-" + payee,
		Title:    "Salary Payout: " + payee,
		Category: models.CategorySalary,
		Amount:   amount,
		Payee:    payee,
		Date:     date,
		Status:   models.StatusPaid,
	}
	if teacherID != "" {
		e.TeacherID = &teacherID
	}
	return e
}

func rentExpense(date time.Time, status models.ExpenseStatus) *models.Expense {
	return &models.Expense{
		ID:       "exp-rent",
		Title:    "Building Rent",
		Category: models.CategoryBuildingRent,
		Amount:   32000,
		Payee:    "Landlord",
		Date:     date,
		Status:   status,
	}
}

func TestSynthesizeRent(t *testing.T) {
	s := NewSynthesizer(32000)

	tests := []struct {
		name     string
		expenses []*models.Expense
		wantRent bool
	}{
		{name: "no expenses at all", wantRent: true},
		{name: "rent already recorded this month", expenses: []*models.Expense{rentExpense(testNow.AddDate(0, 0, -3), models.StatusPaid)}, wantRent: false},
		{name: "pending rent still counts as recorded", expenses: []*models.Expense{rentExpense(testNow.AddDate(0, 0, -3), models.StatusPending)}, wantRent: false},
		{name: "rent from last month does not count", expenses: []*models.Expense{rentExpense(testNow.AddDate(0, -1, 0), models.StatusPaid)}, wantRent: true},
		{name: "other categories do not satisfy rent", expenses: []*models.Expense{{ID: "x", Category: models.CategoryUtilities, Date: testNow, Status: models.StatusPaid}}, wantRent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			virtual := s.Synthesize(tt.expenses, nil, Filter{}, testNow)
			if tt.wantRent {
				require.Len(t, virtual, 1)
				row := virtual[0]
				assert.Equal(t, VirtualRentID, row.ID)
				assert.Equal(t, models.CategoryBuildingRent, row.Category)
				assert.Equal(t, int64(32000), row.Amount)
				assert.Equal(t, DefaultRentPayee, row.Payee)
				assert.Equal(t, models.StatusPending, row.Status)
				assert.True(t, row.IsVirtual)
			} else {
				assert.Empty(t, virtual)
			}
		})
	}
}

func TestSynthesizeSalaries(t *testing.T) {
	s := NewSynthesizer(32000)
	roster := []*models.Teacher{
		teacher("t1", "Alice", "Auma"),
		teacher("t2", "Brian", "Baluku"),
		teacher("t3", "Clare", "Chandiru"),
	}

	t.Run("one virtual row per unpaid teacher", func(t *testing.T) {
		virtual := s.Synthesize(nil, roster, Filter{Category: "Salary"}, testNow)
		require.Len(t, virtual, 3)
		seen := map[string]bool{}
		for _, v := range virtual {
			assert.Equal(t, models.CategorySalary, v.Category)
			assert.Zero(t, v.Amount)
			assert.Equal(t, models.StatusPending, v.Status)
			assert.True(t, v.IsVirtual)
			seen[v.ID] = true
		}
		assert.True(t, seen[VirtualSalaryID("t1")])
		assert.True(t, seen[VirtualSalaryID("t2")])
		assert.True(t, seen[VirtualSalaryID("t3")])
	})

	t.Run("matched by teacher reference", func(t *testing.T) {
		paid := []*models.Expense{paidSalary("t2", "Brian Baluku", 40000, testNow.AddDate(0, 0, -1))}
		virtual := s.Synthesize(paid, roster, Filter{Category: "Salary"}, testNow)
		require.Len(t, virtual, 2)
		for _, v := range virtual {
			assert.NotEqual(t, VirtualSalaryID("t2"), v.ID)
		}
	})

	t.Run("matched by payee name only", func(t *testing.T) {
		paid := []*models.Expense{paidSalary("", "Clare Chandiru", 35000, testNow)}
		virtual := s.Synthesize(paid, roster, Filter{Category: "Salary"}, testNow)
		require.Len(t, virtual, 2)
		for _, v := range virtual {
			assert.NotEqual(t, VirtualSalaryID("t3"), v.ID)
		}
	})

	t.Run("last month's salary does not cover this month", func(t *testing.T) {
		paid := []*models.Expense{paidSalary("t1", "Alice Auma", 40000, testNow.AddDate(0, -1, 0))}
		virtual := s.Synthesize(paid, roster, Filter{Category: "Salary"}, testNow)
		assert.Len(t, virtual, 3)
	})

	t.Run("inactive teachers are skipped", func(t *testing.T) {
		retired := &models.Teacher{ID: "t9", FirstName: "Old", LastName: "Guard", IsActive: false}
		virtual := s.Synthesize(nil, []*models.Teacher{retired}, Filter{Category: "Salary"}, testNow)
		assert.Empty(t, virtual)
	})

	t.Run("nil roster degrades silently", func(t *testing.T) {
		virtual := s.Synthesize(nil, nil, Filter{Category: "Salary"}, testNow)
		assert.Empty(t, virtual)
	})
}

func TestSynthesizeCategoryScoping(t *testing.T) {
	s := NewSynthesizer(32000)
	roster := []*models.Teacher{teacher("t1", "Alice", "Auma")}

	t.Run("salary filter suppresses rent", func(t *testing.T) {
		virtual := s.Synthesize(nil, roster, Filter{Category: "Salary"}, testNow)
		require.Len(t, virtual, 1)
		assert.Equal(t, models.CategorySalary, virtual[0].Category)
	})

	t.Run("rent filter suppresses salaries", func(t *testing.T) {
		virtual := s.Synthesize(nil, roster, Filter{Category: "Building Rent"}, testNow)
		require.Len(t, virtual, 1)
		assert.Equal(t, models.CategoryBuildingRent, virtual[0].Category)
	})

	t.Run("unrelated category suppresses everything", func(t *testing.T) {
		virtual := s.Synthesize(nil, roster, Filter{Category: "Utilities"}, testNow)
		assert.Empty(t, virtual)
	})

	t.Run("All behaves like no filter", func(t *testing.T) {
		virtual := s.Synthesize(nil, roster, Filter{Category: "All"}, testNow)
		assert.Len(t, virtual, 2)
	})
}

func TestSynthesizeHistoricalViews(t *testing.T) {
	s := NewSynthesizer(32000)
	roster := []*models.Teacher{teacher("t1", "Alice", "Auma")}

	t.Run("start date in an earlier month disables synthesis", func(t *testing.T) {
		start := testNow.AddDate(0, -2, 0)
		virtual := s.Synthesize(nil, roster, Filter{StartDate: &start}, testNow)
		assert.Empty(t, virtual)
	})

	t.Run("start date inside the current month keeps synthesis on", func(t *testing.T) {
		start := time.Date(testNow.Year(), testNow.Month(), 1, 0, 0, 0, 0, time.UTC)
		virtual := s.Synthesize(nil, roster, Filter{StartDate: &start}, testNow)
		assert.Len(t, virtual, 2)
	})
}

// The worked scenario: three teachers, one paid this month, no rent row.
func TestSynthesizeScenario(t *testing.T) {
	s := NewSynthesizer(32000)
	roster := []*models.Teacher{
		teacher("a", "Teacher", "A"),
		teacher("b", "Teacher", "B"),
		teacher("c", "Teacher", "C"),
	}
	persisted := []*models.Expense{paidSalary("b", "Teacher B", 40000, testNow)}

	virtual := s.Synthesize(persisted, roster, Filter{}, testNow)
	merged := Merge(persisted, virtual)

	require.Len(t, merged, 4) // B's paid salary, virtuals for A and C, virtual rent
	assert.Equal(t, int64(32000), PendingTotal(merged))

	ids := map[string]bool{}
	for _, e := range merged {
		ids[e.ID] = true
	}
	assert.True(t, ids[VirtualRentID])
	assert.True(t, ids[VirtualSalaryID("a")])
	assert.True(t, ids[VirtualSalaryID("c")])
	assert.False(t, ids[VirtualSalaryID("b")])
}

// Materializing an obligation must stop its row from being synthesized
// on the next pass.
func TestSynthesizeIdempotentAfterMaterialization(t *testing.T) {
	s := NewSynthesizer(32000)
	roster := []*models.Teacher{teacher("t1", "Alice", "Auma")}

	virtual := s.Synthesize(nil, roster, Filter{}, testNow)
	require.Len(t, virtual, 2)

	salaryRow := Find(virtual, VirtualSalaryID("t1"))
	require.NotNil(t, salaryRow)

	// Pay it: the materialized payload becomes a persisted row.
	op, err := Dispatch(ActionPay, salaryRow, nil)
	require.NoError(t, err)
	require.Equal(t, OpCreate, op.Kind)

	persisted := []*models.Expense{{
		ID:        "real-1",
		Title:     op.Payload.Title,
		Category:  op.Payload.Category,
		Amount:    op.Payload.Amount,
		Payee:     op.Payload.Payee,
		TeacherID: op.Payload.TeacherID,
		Date:      op.Payload.Date,
		Status:    op.Payload.Status,
	}}

	next := s.Synthesize(persisted, roster, Filter{}, testNow)
	require.Len(t, next, 1)
	assert.Equal(t, VirtualRentID, next[0].ID)
}

func TestIsVirtualID(t *testing.T) {
	assert.True(t, IsVirtualID(VirtualRentID))
	assert.True(t, IsVirtualID(VirtualSalaryID("abc")))
	assert.False(t, IsVirtualID("8e7d9c6a-0000-0000-0000-000000000000"))
	assert.False(t, IsVirtualID(""))
}

package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeSortsByDateDescending(t *testing.T) {
	persisted := []*models.Expense{
		{ID: "a", Date: day(3), Status: models.StatusPaid},
		{ID: "b", Date: day(10), Status: models.StatusPaid},
	}
	virtual := []*models.Expense{
		{ID: "v", Date: day(15), Status: models.StatusPending, IsVirtual: true},
	}

	merged := Merge(persisted, virtual)
	require.Len(t, merged, 3)
	assert.Equal(t, "v", merged[0].ID)
	assert.Equal(t, "b", merged[1].ID)
	assert.Equal(t, "a", merged[2].ID)
}

func TestMergeIsStableForEqualDates(t *testing.T) {
	persisted := []*models.Expense{
		{ID: "first", Date: day(5)},
		{ID: "second", Date: day(5)},
		{ID: "third", Date: day(5)},
	}

	merged := Merge(persisted, nil)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	persisted := []*models.Expense{
		{ID: "a", Date: day(1)},
		{ID: "b", Date: day(2)},
	}
	_ = Merge(persisted, []*models.Expense{{ID: "v", Date: day(9)}})
	assert.Equal(t, "a", persisted[0].ID)
	assert.Equal(t, "b", persisted[1].ID)
}

func TestPendingTotal(t *testing.T) {
	entries := []*models.Expense{
		{ID: "paid", Amount: 100000, Status: models.StatusPaid},
		{ID: "pending", Amount: 15000, Status: models.StatusPending},
		{ID: "rent", Amount: 32000, Status: models.StatusPending, IsVirtual: true},
		{ID: "salary", Amount: 0, Status: models.StatusPending, IsVirtual: true},
	}
	assert.Equal(t, int64(47000), PendingTotal(entries))
}

func TestPendingTotalEmpty(t *testing.T) {
	assert.Zero(t, PendingTotal(nil))
}

func TestFind(t *testing.T) {
	entries := []*models.Expense{
		{ID: "a"},
		{ID: VirtualRentID, IsVirtual: true},
	}
	require.NotNil(t, Find(entries, VirtualRentID))
	assert.True(t, Find(entries, VirtualRentID).IsVirtual)
	assert.Nil(t, Find(entries, "missing"))
}

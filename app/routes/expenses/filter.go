package expenses

import (
	"fmt"
	"time"

	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func validCategory(category string) bool {
	return models.ExpenseCategory(category).IsValid()
}

const dateLayout = "2006-01-02"

// ParseFilter builds a ledger filter from the listing query parameters.
// Dates use YYYY-MM-DD; a malformed date or unknown category is an error
// rather than a silently empty filter.
func ParseFilter(category, startDate, endDate string) (ledger.Filter, error) {
	f := ledger.Filter{Category: category}

	if category != "" && category != "All" {
		if !validCategory(category) {
			return ledger.Filter{}, fmt.Errorf("unknown category %q", category)
		}
	}

	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return ledger.Filter{}, fmt.Errorf("invalid startDate %q", startDate)
		}
		f.StartDate = &t
	}
	if endDate != "" {
		t, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return ledger.Filter{}, fmt.Errorf("invalid endDate %q", endDate)
		}
		f.EndDate = &t
	}

	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return ledger.Filter{}, fmt.Errorf("endDate precedes startDate")
	}

	return f, nil
}

package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/expenses"
)

// ReportOutstandingObligations re-runs the obligation synthesis against
// current database state and logs what is still owed this month. It is
// the bursar's morning reminder, not a mutation: nothing is written.
func ReportOutstandingObligations(db *sql.DB, synth ledger.Synthesizer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()

	persisted, err := expenses.QueryExpenses(ctx, db, ledger.Filter{})
	if err != nil {
		return err
	}

	roster, err := database.GetActiveTeachers(ctx, db)
	if err != nil {
		log.Printf("Obligation sweep: roster unavailable, checking rent only: %v", err)
		roster = nil
	}

	virtual := synth.Synthesize(persisted, roster, ledger.Filter{}, now)
	if len(virtual) == 0 {
		log.Printf("Obligation sweep: all recurring obligations recorded for %s", now.Format("January 2006"))
		return nil
	}

	var rent, salaries int
	for _, v := range virtual {
		switch v.Category {
		case models.CategoryBuildingRent:
			rent++
		case models.CategorySalary:
			salaries++
		}
	}
	log.Printf("Obligation sweep for %s: %d outstanding (%d rent, %d salaries), pending total %d",
		now.Format("January 2006"), len(virtual), rent, salaries, ledger.PendingTotal(virtual))
	return nil
}

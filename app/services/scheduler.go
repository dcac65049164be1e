package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB, synth ledger.Synthesizer) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 7:30 AM, before the office opens
			if now.Hour() == 7 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [07:30]...")

				if err := ReportOutstandingObligations(db, synth); err != nil {
					log.Printf("Error running obligation sweep: %v", err)
				}
			}
		}
	}()
}

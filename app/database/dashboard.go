package database

import (
	"database/sql"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// GetDashboardStats returns the headline numbers for the admin dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(DISTINCT u.id)
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = 'teacher' AND u.is_active = true
	`).Scan(&stats.TotalTeachers)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE status = 'Paid' AND deleted_at IS NULL
		AND date_trunc('month', date) = date_trunc('month', CURRENT_DATE)
	`).Scan(&stats.MonthlySpend)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(balance), 0) FROM fees WHERE deleted_at IS NULL`).
		Scan(&stats.PendingFeeBalance)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM events WHERE end_date >= NOW()`).
		Scan(&stats.UpcomingEvents)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

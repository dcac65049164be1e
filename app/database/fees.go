package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// GetFeesByStudent returns a student's fees, newest due date first.
func GetFeesByStudent(db *sql.DB, studentID string) ([]*models.Fee, error) {
	query := `SELECT id, student_id, kind, title, amount, balance, paid, due_date, paid_at, created_at, updated_at
			  FROM fees
			  WHERE student_id = $1 AND deleted_at IS NULL
			  ORDER BY due_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		f := &models.Fee{}
		if err := rows.Scan(&f.ID, &f.StudentID, &f.Kind, &f.Title, &f.Amount, &f.Balance,
			&f.Paid, &f.DueDate, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// GetFeeStanding computes the inputs of the dashboard access policy: the
// total unpaid balance and whether any admission fee is still open.
func GetFeeStanding(db *sql.DB, studentID string) (*models.FeeStanding, error) {
	standing := &models.FeeStanding{StudentID: studentID}

	query := `SELECT COALESCE(SUM(balance), 0),
			         COALESCE(BOOL_OR(kind = 'admission' AND NOT paid), false)
			  FROM fees
			  WHERE student_id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, studentID).Scan(&standing.Balance, &standing.AdmissionPending)
	if err != nil {
		return nil, err
	}
	return standing, nil
}

// CreateFee inserts a fee with its balance initialised to the full amount.
func CreateFee(db *sql.DB, f *models.Fee) error {
	query := `INSERT INTO fees (student_id, kind, title, amount, balance, paid, due_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $4, false, $5, NOW(), NOW())
			  RETURNING id, balance, created_at, updated_at`
	return db.QueryRow(query, f.StudentID, f.Kind, f.Title, f.Amount, f.DueDate).
		Scan(&f.ID, &f.Balance, &f.CreatedAt, &f.UpdatedAt)
}

// RecordFeePayment reduces the fee balance by amount and marks the fee
// paid when the balance reaches zero.
func RecordFeePayment(db *sql.DB, feeID string, amount int64, at time.Time) (*models.Fee, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	f := &models.Fee{}
	query := `SELECT id, student_id, kind, title, amount, balance, paid, due_date, paid_at, created_at, updated_at
			  FROM fees WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	err = tx.QueryRow(query, feeID).Scan(&f.ID, &f.StudentID, &f.Kind, &f.Title, &f.Amount,
		&f.Balance, &f.Paid, &f.DueDate, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if amount > f.Balance {
		return nil, fmt.Errorf("payment %d exceeds outstanding balance %d", amount, f.Balance)
	}

	f.Balance -= amount
	if f.Balance == 0 {
		f.MarkAsPaid(at)
	}

	_, err = tx.Exec(`UPDATE fees SET balance = $1, paid = $2, paid_at = $3, updated_at = NOW() WHERE id = $4`,
		f.Balance, f.Paid, f.PaidAt, f.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return f, nil
}

// GetFeeStats aggregates the fee book for the admin dashboard.
func GetFeeStats(db *sql.DB) (map[string]interface{}, error) {
	var totalFees, paidFees int
	var totalBilled, totalOutstanding int64

	query := `SELECT COUNT(*),
			         COUNT(*) FILTER (WHERE paid),
			         COALESCE(SUM(amount), 0),
			         COALESCE(SUM(balance), 0)
			  FROM fees WHERE deleted_at IS NULL`
	err := db.QueryRow(query).Scan(&totalFees, &paidFees, &totalBilled, &totalOutstanding)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_fees":        totalFees,
		"paid_fees":         paidFees,
		"unpaid_fees":       totalFees - paidFees,
		"total_billed":      totalBilled,
		"total_outstanding": totalOutstanding,
	}, nil
}

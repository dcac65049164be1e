package expenses

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

const expenseColumns = `id, title, category, amount, payee, teacher_id, date, method, status, COALESCE(description, ''), created_at, updated_at`

func scanExpense(row interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	e := &models.Expense{}
	var teacherID sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.Category, &e.Amount, &e.Payee, &teacherID,
		&e.Date, &e.Method, &e.Status, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if teacherID.Valid {
		e.TeacherID = &teacherID.String
	}
	return e, nil
}

// QueryExpenses returns persisted expenses matching the filter, newest
// first.
func QueryExpenses(ctx context.Context, db *sql.DB, f ledger.Filter) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE deleted_at IS NULL`

	var args []interface{}
	argIndex := 1

	if f.Category != "" && f.Category != "All" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, f.Category)
		argIndex++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIndex)
		args = append(args, *f.StartDate)
		argIndex++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIndex)
		args = append(args, *f.EndDate)
		argIndex++
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // empty slice for non-null JSON
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func GetExpenseByID(db *sql.DB, id string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND deleted_at IS NULL`
	return scanExpense(db.QueryRow(query, id))
}

// InsertExpense persists a payload and returns the stored row. This is
// also how a virtual row materializes.
func InsertExpense(db *sql.DB, p ledger.Payload) (*models.Expense, error) {
	query := `INSERT INTO expenses (title, category, amount, payee, teacher_id, date, method, status, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING ` + expenseColumns
	return scanExpense(db.QueryRow(query,
		p.Title, p.Category, p.Amount, p.Payee, p.TeacherID, p.Date, p.Method, p.Status, p.Description))
}

// UpdateExpense replaces a persisted row with the payload.
func UpdateExpense(db *sql.DB, id string, p ledger.Payload) (*models.Expense, error) {
	query := `UPDATE expenses
			  SET title = $1, category = $2, amount = $3, payee = $4, teacher_id = $5,
			      date = $6, method = $7, status = $8, description = $9, updated_at = NOW()
			  WHERE id = $10 AND deleted_at IS NULL
			  RETURNING ` + expenseColumns
	e, err := scanExpense(db.QueryRow(query,
		p.Title, p.Category, p.Amount, p.Payee, p.TeacherID, p.Date, p.Method, p.Status, p.Description, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense not found")
	}
	return e, err
}

func DeleteExpense(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE expenses SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}

// QueryExpenseStats aggregates persisted rows only; virtual rows never
// reach these numbers.
func QueryExpenseStats(db *sql.DB, topN int) (*models.ExpenseStats, error) {
	stats := &models.ExpenseStats{ByCategory: []models.CategoryTotal{}}

	query := `SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'Paid'), 0),
	                 COALESCE(SUM(amount) FILTER (WHERE status = 'Pending'), 0)
			  FROM expenses WHERE deleted_at IS NULL`
	if err := db.QueryRow(query).Scan(&stats.TotalSpent, &stats.TotalPending); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT category, SUM(amount)
		FROM expenses
		WHERE status = 'Paid' AND deleted_at IS NULL
		GROUP BY category
		ORDER BY SUM(amount) DESC
		LIMIT $1
	`, topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		stats.ByCategory = append(stats.ByCategory, ct)
	}
	return stats, rows.Err()
}

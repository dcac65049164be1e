package database

import (
	"context"
	"database/sql"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// GetActiveTeachers returns the roster of active teaching staff, ordered
// by name. The ledger uses it to drive salary-obligation synthesis.
func GetActiveTeachers(ctx context.Context, db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT DISTINCT u.id, u.first_name, u.last_name, u.email, COALESCE(u.phone, ''), u.is_active, u.created_at
			  FROM users u
			  JOIN user_roles ur ON u.id = ur.user_id
			  JOIN roles r ON ur.role_id = r.id
			  WHERE r.name = 'teacher' AND u.is_active = true AND u.deleted_at IS NULL
			  ORDER BY u.first_name, u.last_name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// DeactivateTeacher marks the teacher's user row inactive; synthesis
// stops producing salary rows for inactive staff.
func DeactivateTeacher(db *sql.DB, teacherID string) error {
	_, err := db.Exec(`UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`, teacherID)
	return err
}

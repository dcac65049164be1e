package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.is_active, r.created_at, r.updated_at
			  FROM roles r
			  JOIN user_roles ur ON r.id = ur.role_id
			  WHERE ur.user_id = $1 AND r.deleted_at IS NULL`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		r := &models.Role{}
		if err := rows.Scan(&r.ID, &r.Name, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, hashedPassword, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// CreateUser inserts a user and attaches the named roles in one
// transaction.
func CreateUser(db *sql.DB, user *models.User, roleNames ...string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	user.ID = uuid.New().String()
	query := `INSERT INTO users (id, email, password, first_name, last_name, phone, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
			  RETURNING created_at, updated_at`
	err = tx.QueryRow(query, user.ID, user.Email, user.Password, user.FirstName, user.LastName, user.Phone).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}

	for _, name := range roleNames {
		var roleID string
		if err := tx.QueryRow(`SELECT id FROM roles WHERE name = $1`, name).Scan(&roleID); err != nil {
			return fmt.Errorf("role %q not found: %v", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			user.ID, roleID); err != nil {
			return fmt.Errorf("failed to attach role %q: %v", name, err)
		}
	}

	return tx.Commit()
}

package database

import (
	"database/sql"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, student_code, first_name, last_name, COALESCE(gender, ''), class_name, is_active, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&s.ID, &s.StudentCode, &s.FirstName, &s.LastName,
		&s.Gender, &s.ClassName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, student_code, first_name, last_name, COALESCE(gender, ''), class_name, is_active, created_at, updated_at
			  FROM students WHERE deleted_at IS NULL
			  ORDER BY class_name, first_name, last_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.StudentCode, &s.FirstName, &s.LastName,
			&s.Gender, &s.ClassName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_code, first_name, last_name, gender, class_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.StudentCode, s.FirstName, s.LastName, s.Gender, s.ClassName).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

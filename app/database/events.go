package database

import (
	"database/sql"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// CreateEvent adds a new event to the database.
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `INSERT INTO events (title, description, start_date, end_date, audience, location, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Audience, event.Location,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetEvents retrieves events ordered by start date; upcomingOnly limits
// the result to events that have not yet ended.
func GetEvents(db *sql.DB, upcomingOnly bool) ([]models.Event, error) {
	query := `SELECT id, title, description, start_date, end_date, audience, COALESCE(location, ''), created_at, updated_at
			  FROM events`
	if upcomingOnly {
		query += ` WHERE end_date >= NOW()`
	}
	query += ` ORDER BY start_date ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
			&e.Audience, &e.Location, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteEvent deletes an event by ID.
func DeleteEvent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM events WHERE id = $1`, id)
	return err
}

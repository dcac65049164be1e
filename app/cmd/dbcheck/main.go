package main

import (
	"fmt"
	"log"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
)

// Connectivity check: connects with the configured credentials and runs a
// couple of sanity queries.
func main() {
	config.Load()
	db := config.GetDB()
	defer db.Close()

	fmt.Println("Testing expenses query...")
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM expenses WHERE deleted_at IS NULL`).Scan(&count); err != nil {
		log.Fatal("expenses query failed: ", err)
	}
	fmt.Printf("OK: %d expense rows\n", count)

	fmt.Println("Testing teacher roster query...")
	if err := db.QueryRow(`
		SELECT COUNT(DISTINCT u.id)
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = 'teacher' AND u.is_active = true
	`).Scan(&count); err != nil {
		log.Fatal("roster query failed: ", err)
	}
	fmt.Printf("OK: %d active teachers\n", count)
}

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/HussainIjaz209/OKS-sub001/app/config"
	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
	"github.com/HussainIjaz209/OKS-sub001/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", models.RoleAdmin, "role to attach (admin, bursar, teacher, student)")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("email, password, first and last are required")
	}

	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(config.GetDB(), user, *role); err != nil {
		log.Fatalf("Error creating user: %v", err)
	}

	fmt.Printf("User created successfully: %s %s (%s) as %s\n", user.FirstName, user.LastName, user.Email, *role)
}

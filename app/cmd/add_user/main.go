package main

import (
	"flag"
	"fmt"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
	"github.com/yanis-san/torii-auto/app/routes/auth"
)

func main() {
	firstName := flag.String("first", "Admin", "first name")
	lastName := flag.String("last", "User", "last name")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "initial password (required)")
	role := flag.String("role", models.RoleAdmin, "account role (admin or teacher)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first ...] [-last ...] [-role ...]")
		return
	}
	if *role != models.RoleAdmin && *role != models.RoleTeacher {
		fmt.Printf("Invalid role %q\n", *role)
		return
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  hashed,
		Role:      *role,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}

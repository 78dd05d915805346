package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/ahmed1mohammd/Attendee-system/app/config"
	"github.com/ahmed1mohammd/Attendee-system/app/database"
	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
)

func main() {
	username := flag.String("username", "admin", "login username")
	name := flag.String("name", "Administrator", "display name")
	phone := flag.String("phone", "", "phone number")
	role := flag.String("role", "admin", "user role (admin or manager)")
	password := flag.String("password", "", "login password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("A password is required, pass -password")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	st := database.New(db)
	user := &models.User{
		Username: *username,
		Name:     *name,
		Phone:    *phone,
		Role:     models.Role(*role),
		Password: hash,
		IsActive: true,
	}
	if err := st.CreateUser(user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("User created: %s (%s)\n", user.Username, user.Role)
}

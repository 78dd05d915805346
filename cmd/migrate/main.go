package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ahmed1mohammd/Attendee-system/app/config"
	"github.com/ahmed1mohammd/Attendee-system/app/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migrations completed successfully")
}

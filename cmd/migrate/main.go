package main

import (
	"log"
	"os"

	"notes-be/internal/model"
	"notes-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "notes.db"
	}

	db, err := database.NewGormDB(path)
	if err != nil {
		log.Fatal("Error: Failed to open database:", err)
	}

	log.Println("Running schema migration...")
	if err := model.Migrate(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}
	log.Println("Migration completed")
}

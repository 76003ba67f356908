package main

import (
	"context"
	"log"
	"os"

	"notes-be/internal/model"
	"notes-be/internal/seeder"
	"notes-be/pkg/database"

	"github.com/fatih/color"
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
	if err := model.Migrate(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	n, err := seeder.Seed(context.Background(), db)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}
	if n == 0 {
		color.Yellow("Store is not empty, nothing seeded")
		return
	}
	color.Green("Seeded %d demo notes into %s", n, path)
}

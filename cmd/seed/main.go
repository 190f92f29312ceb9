package main

import (
	"log"
	"os"
	"time"

	"voicepad-be/internal/model"
	"voicepad-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds a demo account with one folder and a welcome note. Safe to run
// repeatedly; existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo data...")

	demoEmail := "demo@voicepad.local"

	var existing model.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash password: %v", err)
		os.Exit(1)
	}
	hashStr := string(hash)

	user := model.User{
		Id:           uuid.New(),
		Email:        demoEmail,
		FullName:     "Demo User",
		PasswordHash: &hashStr,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Failed to create demo user: %v", err)
		os.Exit(1)
	}
	color.Green("Created user: %s", user.Email)

	folderColor := "#7C3AED"
	folder := model.Folder{
		Id:        uuid.New(),
		Name:      "Getting Started",
		Color:     &folderColor,
		UserId:    user.Id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&folder).Error; err != nil {
		color.Red("Failed to create demo folder: %v", err)
		os.Exit(1)
	}
	color.Green("Created folder: %s", folder.Name)

	note := model.Note{
		Id:        uuid.New(),
		Title:     "Welcome to VoicePad",
		Content:   "Record a voice note or just start typing. Trash keeps deleted notes until you remove them permanently.",
		Tags:      datatypes.JSON([]byte(`["welcome"]`)),
		FolderId:  &folder.Id,
		UserId:    user.Id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&note).Error; err != nil {
		color.Red("Failed to create welcome note: %v", err)
		os.Exit(1)
	}
	color.Green("Created note: %s", note.Title)

	color.Cyan("Seeding completed. Login with %s / demo1234", demoEmail)
}

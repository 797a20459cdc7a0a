package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"kivulounge/internal/database"
	"kivulounge/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "kivulounge.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Booking{},
		&domain.ChatMessage{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@choicekivulounge.rw",
		PasswordHash: string(adminHash),
		Name:         "Lounge Manager",
		Phone:        "+250788123456",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@choicekivulounge.rw / admin123")

	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	guest := domain.User{
		Email:        "guest@example.com",
		PasswordHash: string(guestHash),
		Name:         "Test Guest",
		Phone:        "+250788000111",
		Role:         domain.RoleGuest,
	}
	db.Create(&guest)
	log.Println("Guest created: guest@example.com / guest123")

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{
			Name:        "Lake View Suite",
			Description: "Spacious suite overlooking Lake Kivu with a private balcony.",
			Capacity:    2,
			DailyRate:   80,
			HourlyRate:  15,
			Amenities:   []string{"WiFi", "Balcony", "Lake view", "Hot shower"},
			IsAvailable: true,
		},
		{
			Name:        "Garden Room",
			Description: "Quiet double room opening onto the garden courtyard.",
			Capacity:    2,
			DailyRate:   50,
			HourlyRate:  10,
			Amenities:   []string{"WiFi", "Garden access", "Hot shower"},
			IsAvailable: true,
		},
		{
			Name:        "Family Room",
			Description: "Two connected rooms for families, sleeps four comfortably.",
			Capacity:    4,
			DailyRate:   110,
			HourlyRate:  20,
			Amenities:   []string{"WiFi", "Two beds", "Work desk", "Hot shower"},
			IsAvailable: true,
		},
		{
			Name:        "Budget Single",
			Description: "Compact single room for solo travellers.",
			Capacity:    1,
			DailyRate:   30,
			HourlyRate:  7,
			Amenities:   []string{"WiFi", "Shared bathroom"},
			IsAvailable: true,
		},
	}
	for i := range rooms {
		db.Create(&rooms[i])
		log.Printf("Room created: %s ($%.0f/day)", rooms[i].Name, rooms[i].DailyRate)
	}

	log.Println("Seed complete.")
}

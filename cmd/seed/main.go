package main

import (
	"fmt"
	"log"
	"time"

	"busly/internal/shared/config"
	"busly/internal/shared/database"
	"busly/internal/trips"
	"busly/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Busly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payment_transactions",
		"tickets",
		"trips",
		"routes",
		"users",
	}

	gormDB := s.db.GetPostgreSQL()
	for _, table := range tables {
		if err := gormDB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// SeedAll populates an admin account, routes, and a week of scheduled trips
func (s *Seeder) SeedAll() error {
	if err := s.seedAdmin(); err != nil {
		return err
	}
	return s.seedRoutesAndTrips()
}

func (s *Seeder) seedAdmin() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &users.User{
		FirstName: "Busly",
		LastName:  "Admin",
		Email:     "admin@busly.local",
		Password:  string(hashedPassword),
		Role:      users.RoleAdmin,
		Phone:     "+10000000000",
	}

	if err := s.db.GetPostgreSQL().Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	fmt.Println("  👤 Admin account: admin@busly.local / admin123")
	return nil
}

func (s *Seeder) seedRoutesAndTrips() error {
	gormDB := s.db.GetPostgreSQL()

	routeDefs := []trips.Route{
		{Name: "Coastal Express", Origin: "San Francisco", Destination: "Los Angeles", DistanceKM: 615},
		{Name: "Valley Connector", Origin: "Sacramento", Destination: "Fresno", DistanceKM: 270},
		{Name: "Desert Runner", Origin: "Los Angeles", Destination: "Las Vegas", DistanceKM: 435},
	}

	classes := []string{"economy", "business", "sleeper"}
	prices := []float64{25.00, 45.00, 65.00}

	for i := range routeDefs {
		route := routeDefs[i]
		if err := gormDB.Create(&route).Error; err != nil {
			return fmt.Errorf("failed to seed route %s: %w", route.Name, err)
		}

		// One trip per day for the next 7 days on each route
		for day := 1; day <= 7; day++ {
			trip := trips.Trip{
				RouteID:        route.ID,
				DepartureTime:  time.Now().AddDate(0, 0, day).Truncate(time.Hour),
				Price:          prices[i%len(prices)],
				SeatClass:      classes[i%len(classes)],
				TotalSeats:     40,
				AvailableSeats: 40,
				Status:         trips.TripStatusScheduled,
			}
			if err := gormDB.Create(&trip).Error; err != nil {
				return fmt.Errorf("failed to seed trip on %s: %w", route.Name, err)
			}
		}

		fmt.Printf("  🚌 Route %s: 7 trips scheduled\n", route.Name)
	}

	return nil
}

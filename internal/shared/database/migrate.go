package database

import (
	"busly/internal/tickets"
	"busly/internal/trips"
	"busly/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&trips.Route{},
		&trips.Trip{},
		&tickets.Ticket{},
		&tickets.PaymentTransaction{},
	)
}

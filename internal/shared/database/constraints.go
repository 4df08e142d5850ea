package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// At most one live (active or pending) ticket may hold a seat on a trip.
	// Concurrent bookings that both pass the service-level seat check race to
	// this index; the loser gets a duplicate-key error.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_live_ticket_seat_per_trip
		ON tickets (trip_id, seat_number)
		WHERE status IN ('active', 'pending');
	`).Error
	if err != nil {
		return err
	}

	// Index for seat availability lookups during booking
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_trip_seat
		ON tickets (trip_id, seat_number);
	`).Error
	if err != nil {
		return err
	}

	// Index for the available-seat recompute and trip manifests
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_trip_status
		ON tickets (trip_id, status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

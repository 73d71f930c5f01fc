package models

import "gorm.io/gorm"

// Migrate creates the schema. The single shared model set here is the only
// source of truth for column names and types.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&ServiceGroup{},
		&Service{},
		&Booking{},
		&BlockedTimeSlot{},
		&Membership{},
		&Contact{},
	); err != nil {
		return err
	}

	// Cancelled bookings free their slot, so the uniqueness guard has to be a
	// partial index rather than a gorm uniqueIndex tag. Works on postgres and
	// on the sqlite databases the tests run against.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		 ON bookings(date, time) WHERE status <> 'cancelled'`,
	).Error
}

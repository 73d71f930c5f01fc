package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a public appointment request. Date is "YYYY-MM-DD", Time "HH:MM"
// on a slot boundary. A partial unique index on (date, time) over non-cancelled
// rows (see Migrate) makes double-booking a constraint violation instead of a
// race. Bookings are never hard-deleted; admins move them through statuses.
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
	ServiceID uint   `gorm:"index;not null" json:"serviceId"`
	Date      string `gorm:"type:varchar(10);index;not null" json:"date"`
	Time      string `gorm:"type:varchar(5);not null" json:"time"`
	Notes     string `json:"notes,omitempty"`
	VIPNumber string `gorm:"column:vip_number" json:"vipNumber,omitempty"`
	Status    string `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	ReminderSentAt *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"-"`
}

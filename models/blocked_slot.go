package models

import "time"

// BlockedTimeSlot removes one date+time from availability regardless of
// bookings. Admin-managed only.
type BlockedTimeSlot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_blocked_slot,priority:1" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_blocked_slot,priority:2" json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

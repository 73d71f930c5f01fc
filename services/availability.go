package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bellasalon-backend/models"
)

// ErrInvalidDate is returned when the requested date does not parse as a
// calendar date. Handlers translate it into a 400.
var ErrInvalidDate = errors.New("invalid date")

// Business hours in minutes from midnight. The default grid is hourly slots
// 10:00 through 19:00; when a service is known its duration drives a finer
// 30-minute grid across 09:00-19:00, keeping the whole appointment inside
// business hours.
const (
	businessOpen  = 9 * 60
	businessClose = 19 * 60
	hourlyFirst   = 10 * 60
	slotStep      = 30
)

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// CandidateSlots enumerates the ordered slot grid for a service duration in
// minutes. A non-positive duration selects the default hourly grid.
func CandidateSlots(duration int) []string {
	var slots []string
	if duration <= 0 {
		for m := hourlyFirst; m <= businessClose; m += 60 {
			slots = append(slots, minutesToClock(m))
		}
		return slots
	}
	for m := businessOpen; m+duration <= businessClose; m += slotStep {
		slots = append(slots, minutesToClock(m))
	}
	return slots
}

// AvailableSlots returns the bookable times for a date, ascending. A slot is
// excluded when a non-cancelled booking or a blocked entry holds the same
// date+time. Read-only; no fallback slots are ever fabricated for an empty
// result.
func AvailableSlots(db *gorm.DB, date string, serviceID uint) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	duration := 0
	if serviceID != 0 {
		var service models.Service
		if err := db.First(&service, serviceID).Error; err == nil {
			duration = service.Duration
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Unknown service ids fall back to the default grid; the booking
		// reference is deliberately loose.
	}

	taken := make(map[string]struct{})

	var bookedTimes []string
	if err := db.Model(&models.Booking{}).
		Where("date = ? AND status <> ?", date, models.BookingStatusCancelled).
		Pluck("time", &bookedTimes).Error; err != nil {
		return nil, err
	}
	for _, t := range bookedTimes {
		taken[t] = struct{}{}
	}

	var blockedTimes []string
	if err := db.Model(&models.BlockedTimeSlot{}).
		Where("date = ?", date).
		Pluck("time", &blockedTimes).Error; err != nil {
		return nil, err
	}
	for _, t := range blockedTimes {
		taken[t] = struct{}{}
	}

	available := make([]string, 0)
	for _, slot := range CandidateSlots(duration) {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available, nil
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/services"
	"bellasalon-backend/utils"
)

type CreateBookingInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID uint   `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
	VIPNumber string `json:"vipNumber"`
}

type AppointmentLookupInput struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

type AppointmentUpdateInput struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// CreateBooking persists a public appointment request as pending. The partial
// unique index on (date, time) turns a lost race into a 409 instead of a
// double booking.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Name, email, phone, service, date and time are required", err.Error())
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	if input.VIPNumber != "" {
		var membership models.Membership
		err := config.DB.Where("membership_number = ?", input.VIPNumber).First(&membership).Error
		if err != nil || membership.Expired(time.Now()) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid or expired membership number")
			return
		}
	}

	booking := models.Booking{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Time:      input.Time,
		Notes:     input.Notes,
		VIPNumber: input.VIPNumber,
		Status:    models.BookingStatusPending,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "This slot is no longer available")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"bookingId": booking.ID,
		"booking":   booking,
	})
}

// GetTimeSlots answers the availability query for a date, optionally refined
// by a service's duration.
func GetTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "A date query parameter is required")
		return
	}

	var serviceID uint
	if raw := c.Query("serviceId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid serviceId")
			return
		}
		serviceID = uint(parsed)
	}

	slots, err := services.AvailableSlots(config.DB, date, serviceID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute availability")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

// CheckAppointment looks a booking up by id + email so customers can review
// their request without an account. Any mismatch is a plain 404.
func CheckAppointment(c *gin.Context) {
	var input AppointmentLookupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking id and email are required")
		return
	}

	booking, ok := findBookingByIDAndEmail(input.BookingID, input.Email)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateAppointment lets a customer cancel their own booking; cancellation is
// the only transition the public surface offers.
func UpdateAppointment(c *gin.Context) {
	var input AppointmentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking id, email and status are required")
		return
	}
	if input.Status != models.BookingStatusCancelled {
		utils.RespondWithError(c, http.StatusBadRequest, "Only cancellation is allowed")
		return
	}

	booking, ok := findBookingByIDAndEmail(input.BookingID, input.Email)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	booking.Status = models.BookingStatusCancelled
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func findBookingByIDAndEmail(id uint, email string) (models.Booking, bool) {
	var booking models.Booking
	if err := config.DB.First(&booking, id).Error; err != nil {
		return models.Booking{}, false
	}
	if !strings.EqualFold(booking.Email, strings.TrimSpace(email)) {
		return models.Booking{}, false
	}
	return booking, true
}

type UpdateBookingInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// GetBookings lists bookings for the dashboard, optionally filtered by
// ?date= and ?status=.
func GetBookings(c *gin.Context) {
	query := config.DB.Model(&models.Booking{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidBookingStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown booking status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("date, time").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking is the admin-side partial update; status transitions happen
// only here. Bookings are never hard-deleted.
func UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithErrorDetail(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated := false
	if input.Status != nil {
		if !models.ValidBookingStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown booking status")
			return
		}
		booking.Status = *input.Status
		updated = true
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
		updated = true
	}
	if !updated {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		// Reinstating a cancelled booking trips the slot index when the slot
		// has been taken in the meantime.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "This slot is no longer available")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
	"bellasalon-backend/utils"
)

type DashboardSummary struct {
	TotalBookings     int64            `json:"totalBookings"`
	BookingsByStatus  map[string]int64 `json:"bookingsByStatus"`
	TodayBookings     int64            `json:"todayBookings"`
	ActiveServices    int64            `json:"activeServices"`
	ServiceGroups     int64            `json:"serviceGroups"`
	BlockedSlots      int64            `json:"blockedSlots"`
	ContactMessages   int64            `json:"contactMessages"`
	ActiveMemberships int64            `json:"activeMemberships"`
}

// GetDashboardSummary aggregates the counters the dashboard landing page
// shows. Read-only.
func GetDashboardSummary(c *gin.Context) {
	db := config.DB
	var summary DashboardSummary
	summary.BookingsByStatus = make(map[string]int64)

	if err := db.Model(&models.Booking{}).Count(&summary.TotalBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := db.Model(&models.Booking{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	for _, sc := range counts {
		summary.BookingsByStatus[sc.Status] = sc.Count
	}

	today := time.Now().Format("2006-01-02")
	counters := []*gorm.DB{
		db.Model(&models.Booking{}).Where("date = ?", today).Count(&summary.TodayBookings),
		db.Model(&models.Service{}).Where("is_active = ?", true).Count(&summary.ActiveServices),
		db.Model(&models.ServiceGroup{}).Count(&summary.ServiceGroups),
		db.Model(&models.BlockedTimeSlot{}).Count(&summary.BlockedSlots),
		db.Model(&models.Contact{}).Count(&summary.ContactMessages),
		db.Model(&models.Membership{}).Where("expires_at > ?", time.Now()).Count(&summary.ActiveMemberships),
	}
	for _, counter := range counters {
		if counter.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
			return
		}
	}

	c.JSON(http.StatusOK, summary)
}

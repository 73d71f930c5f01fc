package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellasalon-backend/config"
	"bellasalon-backend/models"
)

func validBookingBody(date, timeSlot string) []byte {
	return []byte(fmt.Sprintf(`{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "+4915112345678",
		"serviceId": 1,
		"date": %q,
		"time": %q
	}`, date, timeSlot))
}

func TestCreateBookingSuccess(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-06-01", "11:00"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success   bool `json:"success"`
		BookingID uint `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotZero(t, resp.BookingID)

	var stored models.Booking
	require.NoError(t, config.DB.First(&stored, resp.BookingID).Error)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
	assert.Equal(t, "2030-06-01", stored.Date)
	assert.Equal(t, "11:00", stored.Time)
}

func TestCreateBookingMissingFields(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodPost, "/api/booking",
		[]byte(`{"name":"Ada","email":"ada@example.com"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")

	var count int64
	config.DB.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateBookingBadFormats(t *testing.T) {
	r := setupTest(t)

	cases := []struct {
		name string
		body []byte
	}{
		{"bad date", validBookingBody("01/06/2030", "11:00")},
		{"bad time", validBookingBody("2030-06-01", "11am")},
	}
	for _, tc := range cases {
		w := doJSON(r, http.MethodPost, "/api/booking", tc.body)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "%s", tc.name)
	}
}

func TestCreateBookingSlotConflict(t *testing.T) {
	r := setupTest(t)

	first := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-06-01", "11:00"))
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-06-01", "11:00"))
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "no longer available")
}

func TestCreateBookingCancelledSlotReusable(t *testing.T) {
	r := setupTest(t)

	require.NoError(t, config.DB.Create(&models.Booking{
		Name: "Old", Email: "old@example.com", Phone: "+4915100000000",
		ServiceID: 1, Date: "2030-06-01", Time: "11:00",
		Status: models.BookingStatusCancelled,
	}).Error)

	w := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-06-01", "11:00"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateBookingVIPNumber(t *testing.T) {
	r := setupTest(t)

	require.NoError(t, config.DB.Create(&models.Membership{
		MembershipNumber: "VIP-001", Name: "Grace", Type: models.MembershipTypeGold,
		ExpiresAt: time.Now().AddDate(1, 0, 0),
	}).Error)
	require.NoError(t, config.DB.Create(&models.Membership{
		MembershipNumber: "VIP-OLD", Name: "Past", Type: models.MembershipTypeSilver,
		ExpiresAt: time.Now().AddDate(-1, 0, 0),
	}).Error)

	valid := []byte(`{
		"name":"Grace","email":"grace@example.com","phone":"+4915112345679",
		"serviceId":1,"date":"2030-06-02","time":"12:00","vipNumber":"VIP-001"
	}`)
	w := doJSON(r, http.MethodPost, "/api/booking", valid)
	assert.Equal(t, http.StatusCreated, w.Code)

	expired := []byte(`{
		"name":"Past","email":"past@example.com","phone":"+4915112345670",
		"serviceId":1,"date":"2030-06-02","time":"13:00","vipNumber":"VIP-OLD"
	}`)
	w = doJSON(r, http.MethodPost, "/api/booking", expired)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	unknown := []byte(`{
		"name":"Eve","email":"eve@example.com","phone":"+4915112345671",
		"serviceId":1,"date":"2030-06-02","time":"14:00","vipNumber":"VIP-404"
	}`)
	w = doJSON(r, http.MethodPost, "/api/booking", unknown)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeSlotsExcludesBookedAndBlocked(t *testing.T) {
	r := setupTest(t)
	admin := createAdmin(t, "admin", "x")
	cookie := adminCookie(t, admin)

	blocked := doJSON(r, http.MethodPost, "/api/admin/blocked-slots",
		[]byte(`{"date":"2024-06-01","time":"11:00"}`), cookie)
	require.Equal(t, http.StatusCreated, blocked.Code)

	booking := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2024-06-01", "13:00"))
	require.Equal(t, http.StatusCreated, booking.Code)

	w := doJSON(r, http.MethodGet, "/api/time-slots?date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AvailableSlots []string `json:"availableSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.AvailableSlots, "11:00")
	assert.NotContains(t, resp.AvailableSlots, "13:00")
	assert.Contains(t, resp.AvailableSlots, "10:00")
}

func TestTimeSlotsBadDate(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodGet, "/api/time-slots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/time-slots?date=junk", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeSlotsAppointmentsAlias(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodGet, "/api/appointments?date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "availableSlots")
}

func TestCheckAppointment(t *testing.T) {
	r := setupTest(t)

	created := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-07-01", "10:00"))
	require.Equal(t, http.StatusCreated, created.Code)
	var resp struct {
		BookingID uint `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	ok := doJSON(r, http.MethodPost, "/api/appointments/check",
		[]byte(fmt.Sprintf(`{"bookingId":%d,"email":"ada@example.com"}`, resp.BookingID)))
	assert.Equal(t, http.StatusOK, ok.Code)

	wrongEmail := doJSON(r, http.MethodPost, "/api/appointments/check",
		[]byte(fmt.Sprintf(`{"bookingId":%d,"email":"mallory@example.com"}`, resp.BookingID)))
	assert.Equal(t, http.StatusNotFound, wrongEmail.Code)

	wrongID := doJSON(r, http.MethodPost, "/api/appointments/check",
		[]byte(`{"bookingId":9999,"email":"ada@example.com"}`))
	assert.Equal(t, http.StatusNotFound, wrongID.Code)
}

func TestPublicCancellation(t *testing.T) {
	r := setupTest(t)

	created := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-07-02", "10:00"))
	require.Equal(t, http.StatusCreated, created.Code)
	var resp struct {
		BookingID uint `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	forbidden := doJSON(r, http.MethodPut, "/api/appointments",
		[]byte(fmt.Sprintf(`{"bookingId":%d,"email":"ada@example.com","status":"confirmed"}`, resp.BookingID)))
	assert.Equal(t, http.StatusBadRequest, forbidden.Code)

	cancelled := doJSON(r, http.MethodPut, "/api/appointments",
		[]byte(fmt.Sprintf(`{"bookingId":%d,"email":"ada@example.com","status":"cancelled"}`, resp.BookingID)))
	require.Equal(t, http.StatusOK, cancelled.Code)

	var stored models.Booking
	require.NoError(t, config.DB.First(&stored, resp.BookingID).Error)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}

func TestAdminBookingLifecycle(t *testing.T) {
	r := setupTest(t)
	admin := createAdmin(t, "admin", "x")
	cookie := adminCookie(t, admin)

	created := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-07-03", "15:00"))
	require.Equal(t, http.StatusCreated, created.Code)
	var resp struct {
		BookingID uint `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	list := doJSON(r, http.MethodGet, "/api/admin/bookings?date=2030-07-03", nil, cookie)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "ada@example.com")

	confirm := doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d", resp.BookingID),
		[]byte(`{"status":"confirmed"}`), cookie)
	require.Equal(t, http.StatusOK, confirm.Code)

	empty := doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d", resp.BookingID),
		[]byte(`{}`), cookie)
	assert.Equal(t, http.StatusBadRequest, empty.Code)
	assert.Contains(t, empty.Body.String(), "No fields to update")

	badStatus := doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d", resp.BookingID),
		[]byte(`{"status":"namaste"}`), cookie)
	assert.Equal(t, http.StatusBadRequest, badStatus.Code)

	missing := doJSON(r, http.MethodPut, "/api/admin/bookings/424242",
		[]byte(`{"status":"confirmed"}`), cookie)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	var stored models.Booking
	require.NoError(t, config.DB.First(&stored, resp.BookingID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
}

// Reinstating a cancelled booking whose slot has since been rebooked must
// answer 409, the same as losing the race on create.
func TestAdminReinstateRebookedSlot(t *testing.T) {
	r := setupTest(t)
	admin := createAdmin(t, "admin", "x")
	cookie := adminCookie(t, admin)

	created := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-08-01", "11:00"))
	require.Equal(t, http.StatusCreated, created.Code)
	var resp struct {
		BookingID uint `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	cancelled := doJSON(r, http.MethodPut, "/api/appointments",
		[]byte(fmt.Sprintf(`{"bookingId":%d,"email":"ada@example.com","status":"cancelled"}`, resp.BookingID)))
	require.Equal(t, http.StatusOK, cancelled.Code)

	rebooked := doJSON(r, http.MethodPost, "/api/booking", validBookingBody("2030-08-01", "11:00"))
	require.Equal(t, http.StatusCreated, rebooked.Code)

	reinstate := doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/bookings/%d", resp.BookingID),
		[]byte(`{"status":"confirmed"}`), cookie)
	assert.Equal(t, http.StatusConflict, reinstate.Code)
	assert.Contains(t, reinstate.Body.String(), "no longer available")

	// The original booking must still be cancelled after the refused update.
	var stored models.Booking
	require.NoError(t, config.DB.First(&stored, resp.BookingID).Error)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}

func TestBlockedSlotLifecycle(t *testing.T) {
	r := setupTest(t)
	admin := createAdmin(t, "admin", "x")
	cookie := adminCookie(t, admin)

	created := doJSON(r, http.MethodPost, "/api/admin/blocked-slots",
		[]byte(`{"date":"2024-06-01","time":"11:00"}`), cookie)
	require.Equal(t, http.StatusCreated, created.Code)

	duplicate := doJSON(r, http.MethodPost, "/api/admin/blocked-slots",
		[]byte(`{"date":"2024-06-01","time":"11:00"}`), cookie)
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	badTime := doJSON(r, http.MethodPost, "/api/admin/blocked-slots",
		[]byte(`{"date":"2024-06-01","time":"25:00"}`), cookie)
	assert.Equal(t, http.StatusBadRequest, badTime.Code)

	var slot models.BlockedTimeSlot
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &slot))

	deleted := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/blocked-slots/%d", slot.ID), nil, cookie)
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	again := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/blocked-slots/%d", slot.ID), nil, cookie)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

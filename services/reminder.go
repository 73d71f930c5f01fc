package services

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"bellasalon-backend/config"
)

// ReminderService sends an SMS/WhatsApp reminder the day before a confirmed
// appointment. It does nothing when Twilio credentials are not configured.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	s := &ReminderService{db: db}
	if config.Cfg.TwilioAccountSID != "" && config.Cfg.TwilioAuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.Cfg.TwilioAccountSID,
			Password: config.Cfg.TwilioAuthToken,
		})
	}
	return s
}

func (s *ReminderService) StartScheduler() {
	if s.client == nil {
		config.Log.Info().Msg("booking reminders disabled, no Twilio credentials")
		return
	}

	c := cron.New()

	// Daily at 9 AM server time.
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	config.Log.Info().Msg("booking reminder scheduler started")
}

// SendDailyReminders messages every confirmed, not-yet-reminded booking for
// tomorrow and stamps the row so reruns are idempotent.
func (s *ReminderService) SendDailyReminders() {
	if s.client == nil {
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	type row struct {
		ID    uint
		Name  string
		Phone string
		Date  string
		Time  string
	}
	var due []row
	err := s.db.Table("bookings").
		Where("date = ? AND status = ? AND reminder_sent_at IS NULL", tomorrow, "confirmed").
		Scan(&due).Error
	if err != nil {
		config.Log.Error().Err(err).Msg("failed to fetch bookings due a reminder")
		return
	}

	for _, b := range due {
		message := "Hi " + b.Name + ", a reminder of your appointment at Bella Salon tomorrow at " + b.Time + ". See you then!"

		to := b.Phone
		from := config.Cfg.TwilioPhoneNumber
		if strings.HasPrefix(b.Phone, "+") && config.Cfg.TwilioWhatsAppNumber != "" {
			to = "whatsapp:" + b.Phone
			from = "whatsapp:" + config.Cfg.TwilioWhatsAppNumber
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(from)
		params.SetBody(message)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			config.Log.Error().Err(err).Uint("booking_id", b.ID).Msg("failed to send booking reminder")
			continue
		}

		now := time.Now()
		if err := s.db.Table("bookings").Where("id = ?", b.ID).
			Update("reminder_sent_at", &now).Error; err != nil {
			config.Log.Error().Err(err).Uint("booking_id", b.ID).Msg("failed to stamp reminder")
		}
	}

	config.Log.Info().Int("count", len(due)).Str("date", tomorrow).Msg("booking reminders processed")
}

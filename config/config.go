package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Cfg holds the process configuration, populated once at startup.
var Cfg Config

type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	DatabaseURL    string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`
	CookieSecure   bool   `envconfig:"COOKIE_SECURE" default:"false"`

	// Optional bootstrap admin, created on startup when no admin exists.
	AdminUsername string `envconfig:"ADMIN_USERNAME"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	ImgurClientID    string `envconfig:"IMGUR_CLIENT_ID"`
	ImgurAccessToken string `envconfig:"IMGUR_ACCESS_TOKEN"`

	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER"`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`

	// Extra CORS origins on top of the built-in allow-list.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

// Load parses the environment into Cfg. DATABASE_URL and JWT_SECRET are
// required; missing either fails the process before it binds a port.
func Load() error {
	return envconfig.Process("", &Cfg)
}

package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"bellasalon-backend/config"
	"bellasalon-backend/controllers"
	"bellasalon-backend/models"
	"bellasalon-backend/routes"
	"bellasalon-backend/services"
	"bellasalon-backend/utils"
)

func main() {
	// Load .env in development; production reads the real environment.
	_ = godotenv.Load()

	if err := config.Load(); err != nil {
		config.InitLogger()
		config.Log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.InitLogger()

	if err := config.ConnectDB(); err != nil {
		config.Log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := models.Migrate(config.DB); err != nil {
		config.Log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	if err := seedAdmin(); err != nil {
		config.Log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	if err := os.MkdirAll(config.Cfg.UploadDir, 0o755); err != nil {
		config.Log.Fatal().Err(err).Msg("failed to create uploads directory")
	}

	controllers.Imgur = services.NewImgurClient(config.Cfg.ImgurClientID, config.Cfg.ImgurAccessToken)

	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	config.Log.Info().Str("port", config.Cfg.Port).Msg("listening")
	if err := r.Run(":" + config.Cfg.Port); err != nil {
		config.Log.Fatal().Err(err).Msg("server exited")
	}
}

// seedAdmin creates the bootstrap admin account when none exists yet and the
// seed credentials are configured.
func seedAdmin() error {
	if config.Cfg.AdminUsername == "" || config.Cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := config.DB.Where("is_admin = ?", true).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(config.Cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Username: config.Cfg.AdminUsername,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	config.Log.Info().Str("username", admin.Username).Msg("seeded admin user")
	return nil
}

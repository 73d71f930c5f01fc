package routes

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bellasalon-backend/config"
	"bellasalon-backend/controllers"
	"bellasalon-backend/utils"
)

var defaultOrigins = []string{
	"https://bellasalon.com",
	"https://www.bellasalon.com",
	"http://localhost:3000",
	"http://localhost:5173",
}

func originAllowed(origin string) bool {
	for _, allowed := range defaultOrigins {
		if origin == allowed {
			return true
		}
	}
	for _, allowed := range config.Cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	// Preview deployments get their own hostnames.
	return strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app")
}

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		AllowOriginFunc:  originAllowed,
	}))

	r.Static("/uploads", "./"+config.Cfg.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/services", controllers.GetPublicServices)
		api.GET("/service-groups", controllers.GetPublicServiceGroups)
		api.GET("/time-slots", controllers.GetTimeSlots)
		api.POST("/booking", controllers.CreateBooking)
		api.GET("/appointments", controllers.GetTimeSlots)
		api.POST("/appointments", controllers.CheckAppointment)
		api.POST("/appointments/check", controllers.CheckAppointment)
		api.PUT("/appointments", controllers.UpdateAppointment)
		api.POST("/contact", controllers.CreateContact)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
			auth.GET("/me", utils.AuthMiddleware(), controllers.Me)
		}

		api.POST("/upload", utils.AuthMiddleware(), controllers.UploadImage)

		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware())
		{
			admin.GET("/dashboard-summary", controllers.GetDashboardSummary)

			groups := admin.Group("/service-groups")
			{
				groups.GET("", controllers.GetServiceGroups)
				groups.GET("/:id", controllers.GetServiceGroup)
				groups.POST("", controllers.CreateServiceGroup)
				groups.PUT("/:id", controllers.UpdateServiceGroup)
				groups.DELETE("/:id", controllers.DeleteServiceGroup)
			}

			servicesGroup := admin.Group("/services")
			{
				servicesGroup.GET("", controllers.GetServices)
				servicesGroup.GET("/:id", controllers.GetService)
				servicesGroup.POST("", controllers.CreateService)
				servicesGroup.PUT("/:id", controllers.UpdateService)
				servicesGroup.DELETE("/:id", controllers.DeleteService)
			}

			bookings := admin.Group("/bookings")
			{
				bookings.GET("", controllers.GetBookings)
				bookings.GET("/:id", controllers.GetBooking)
				bookings.PUT("/:id", controllers.UpdateBooking)
			}

			blocked := admin.Group("/blocked-slots")
			{
				blocked.GET("", controllers.GetBlockedSlots)
				blocked.POST("", controllers.CreateBlockedSlot)
				blocked.DELETE("/:id", controllers.DeleteBlockedSlot)
			}

			users := admin.Group("/users")
			{
				users.GET("", controllers.GetUsers)
				users.GET("/:id", controllers.GetUser)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			memberships := admin.Group("/memberships")
			{
				memberships.GET("", controllers.GetMemberships)
				memberships.POST("", controllers.CreateMembership)
				memberships.DELETE("/:id", controllers.DeleteMembership)
			}

			admin.GET("/contacts", controllers.GetContacts)

			profile := admin.Group("/profile")
			{
				profile.GET("", controllers.GetProfile)
				profile.PUT("", controllers.UpdateProfile)
				profile.PUT("/password", controllers.ChangePassword)
				profile.POST("/avatar", controllers.UploadAvatar)
			}
		}
	}

	return r
}

package config

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// InitLogger builds the process-wide zerolog logger from Cfg.
func InitLogger() {
	level, err := zerolog.ParseLevel(Cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var out = os.Stdout
	if Cfg.LogFormat == "console" {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().Level(level)
		return
	}
	Log = zerolog.New(out).With().Timestamp().Str("service", "bellasalon").Logger().Level(level)
}

// RequestLogger logs every request with latency and tags it with a request id.
// Requests slower than 200ms are logged at warn level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		evt := Log.Info()
		switch {
		case status >= 500:
			evt = Log.Error()
		case latency > 200*time.Millisecond:
			evt = Log.Warn()
		}
		evt.Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Msg("request")
	}
}

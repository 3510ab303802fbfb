package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logs     LogsConfig
	Sessions SessionConfig
	LogLevel string
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
}

type LogsConfig struct {
	Directory      string // Root directory served by the file listing API
	MaxUploadBytes int64
}

type SessionConfig struct {
	TTL           time.Duration // Idle time after which a parsed file is dropped
	SweepSchedule string
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3001")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("LOGS_DIRECTORY", "/mnt/logs")
	viper.SetDefault("MAX_UPLOAD_BYTES", 100*1024*1024) // 100MB
	viper.SetDefault("SESSION_TTL", "1h")
	viper.SetDefault("SESSION_SWEEP_SCHEDULE", "0 */5 * * * *") // Every 5 minutes
	viper.SetDefault("LOG_LEVEL", "info")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.CORSAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))
	if len(config.Server.CORSAllowOrigins) == 0 {
		log.Warn().Str("cors_allow_origins", viper.GetString("CORS_ALLOW_ORIGINS")).Msg("No CORS origin configured, allowing all origins")
		config.Server.CORSAllowOrigins = []string{"*"}
	}

	// --- Logs ---
	config.Logs.Directory = viper.GetString("LOGS_DIRECTORY")
	config.Logs.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")

	// --- Sessions ---
	config.Sessions.TTL = viper.GetDuration("SESSION_TTL")
	config.Sessions.SweepSchedule = viper.GetString("SESSION_SWEEP_SCHEDULE")

	config.LogLevel = viper.GetString("LOG_LEVEL")
	ApplyLogLevel(config.LogLevel)

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// ApplyLogLevel sets the global zerolog level, keeping the current one when
// level is not a known zerolog level name.
func ApplyLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		log.Warn().Str("log_level", level).Msg("Unknown log level, keeping default")
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Store backends accepted in DOCTOR_STORE.
const (
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	Port string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration

	DoctorStore          string
	MongoURI             string
	MongoDatabase        string
	FirestoreProject     string
	FirestoreCredentials string

	UploadDir         string
	MaxUploadBytes    int64
	TempSweepSchedule string
	TempMaxAge        time.Duration

	CORSOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from an optional .env file, an optional
// config.toml and the environment, in increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		GeminiAPIKey:         v.GetString("GEMINI_API_KEY"),
		GeminiModel:          v.GetString("GEMINI_MODEL"),
		GeminiBaseURL:        v.GetString("GEMINI_BASE_URL"),
		GeminiTimeout:        v.GetDuration("GEMINI_TIMEOUT"),
		DoctorStore:          strings.ToLower(strings.TrimSpace(v.GetString("DOCTOR_STORE"))),
		MongoURI:             v.GetString("MONGO_URI"),
		MongoDatabase:        v.GetString("MONGO_DATABASE"),
		FirestoreProject:     v.GetString("FIRESTORE_PROJECT"),
		FirestoreCredentials: v.GetString("FIRESTORE_CREDENTIALS"),
		UploadDir:            v.GetString("UPLOAD_DIR"),
		MaxUploadBytes:       v.GetInt64("MAX_UPLOAD_MB") << 20,
		TempSweepSchedule:    v.GetString("TEMP_SWEEP_SCHEDULE"),
		TempMaxAge:           v.GetDuration("TEMP_MAX_AGE"),
		CORSOrigins:          splitList(v.GetString("CORS_ORIGINS")),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.WithField("store", cfg.DoctorStore).Debug("config parsed")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GEMINI_TIMEOUT", 30*time.Second)
	v.SetDefault("DOCTOR_STORE", StoreMongo)
	v.SetDefault("MONGO_DATABASE", "")
	v.SetDefault("UPLOAD_DIR", os.TempDir())
	v.SetDefault("MAX_UPLOAD_MB", 20)
	v.SetDefault("TEMP_SWEEP_SCHEDULE", "@every 10m")
	v.SetDefault("TEMP_MAX_AGE", 30*time.Minute)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

func (c *Config) validate() error {
	switch c.DoctorStore {
	case StoreMongo, StoreFirestore, StoreMemory:
	default:
		return fmt.Errorf("unknown DOCTOR_STORE %q", c.DoctorStore)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.GeminiTimeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

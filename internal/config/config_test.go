package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "does-not-exist")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreMongo, cfg.DoctorStore)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, 30*time.Minute, cfg.TempMaxAge)
	assert.Equal(t, "@every 10m", cfg.TempSweepSchedule)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.NotEmpty(t, cfg.UploadDir)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CONFIG_NAME", "does-not-exist")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("DOCTOR_STORE", "Memory")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, http://127.0.0.1:3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 5*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, StoreMemory, cfg.DoctorStore)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
}

func TestLoad_UnknownStore(t *testing.T) {
	t.Setenv("CONFIG_NAME", "does-not-exist")
	t.Setenv("DOCTOR_STORE", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

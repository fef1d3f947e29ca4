//go:build unit

package config_test

import (
	"testing"
	"time"

	"recipe-scheduler/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig_ReminderSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Reminder.Hour)
		assert.Equal(t, 15*time.Minute, cfg.Reminder.StuckAfter)
		assert.Equal(t, 3*time.Hour, cfg.Reminder.MaxLateness)
	})

	t.Run("overridden from the environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REMINDER_STUCK_AFTER", "5m")
		t.Setenv("REMINDER_MAX_LATENESS", "90m")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.Reminder.StuckAfter)
		assert.Equal(t, 90*time.Minute, cfg.Reminder.MaxLateness)
	})

	t.Run("zero lateness is rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REMINDER_MAX_LATENESS", "0s")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "REMINDER_MAX_LATENESS")
	})
}

func TestReminderConfig_Validate(t *testing.T) {
	valid := config.NewTestConfig().Reminder
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *config.ReminderConfig)
		want   string
	}{
		{"hour out of range", func(c *config.ReminderConfig) { c.Hour = 24 }, "REMINDER_HOUR"},
		{"unknown time zone", func(c *config.ReminderConfig) { c.TimeZone = "Mars/Olympus" }, "REMINDER_TIMEZONE"},
		{"non-positive batch", func(c *config.ReminderConfig) { c.SweepBatch = 0 }, "REMINDER_SWEEP_BATCH"},
		{"non-positive stuck-after", func(c *config.ReminderConfig) { c.StuckAfter = 0 }, "REMINDER_STUCK_AFTER"},
		{"negative lateness", func(c *config.ReminderConfig) { c.MaxLateness = -time.Minute }, "REMINDER_MAX_LATENESS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}

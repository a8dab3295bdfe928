package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mockmate/interview/internal/models"
)

// app config: oracle provider, interview plan and storage settings
type Config struct {
	Provider string

	MaxFollowUps     int
	SlotTypes        []models.SlotType
	SlotDifficulties []string

	StoreBackend string // "memory" or "redis"
	RedisAddr    string
	SessionTTL   time.Duration

	RetentionSchedule string        // cron spec for the cleanup job
	RetentionAge      time.Duration // completed sessions older than this are evicted
}

// loads configuration from environment variables; a local .env file is
// honored when present
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Provider:          getEnvOrDefault("AI_PROVIDER", "gemini"),
		MaxFollowUps:      getEnvInt("INTERVIEW_MAX_FOLLOW_UPS", 2),
		StoreBackend:      getEnvOrDefault("SESSION_STORE", "memory"),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		SessionTTL:        getEnvDuration("SESSION_TTL", 24*time.Hour),
		RetentionSchedule: getEnvOrDefault("RETENTION_SCHEDULE", "*/30 * * * *"),
		RetentionAge:      getEnvDuration("RETENTION_AGE", time.Hour),
	}

	slotTypes, err := parseSlotPlan(os.Getenv("INTERVIEW_SLOT_PLAN"))
	if err != nil {
		return nil, err
	}
	config.SlotTypes = slotTypes

	difficulties, err := parseDifficulties(os.Getenv("INTERVIEW_SLOT_DIFFICULTIES"), len(slotTypes))
	if err != nil {
		return nil, err
	}
	config.SlotDifficulties = difficulties

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported oracle provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.MaxFollowUps < 0 {
		return errors.New("INTERVIEW_MAX_FOLLOW_UPS must not be negative")
	}
	if config.StoreBackend != "memory" && config.StoreBackend != "redis" {
		return errors.New("unsupported session store: " + config.StoreBackend + ". Supported: memory, redis")
	}
	if len(config.SlotTypes) == 0 {
		return errors.New("interview plan must contain at least one slot")
	}
	if config.SlotTypes[0] != models.SlotSpoken {
		return errors.New("interview plan must open with a spoken warmup slot")
	}
	if len(config.SlotDifficulties) != len(config.SlotTypes) {
		return fmt.Errorf("difficulty list has %d entries for %d slots",
			len(config.SlotDifficulties), len(config.SlotTypes))
	}
	return nil
}

// parseSlotPlan reads a comma-separated slot type list, e.g.
// "spoken,spoken,mcq,coding". Empty input yields the default plan.
func parseSlotPlan(raw string) ([]models.SlotType, error) {
	if strings.TrimSpace(raw) == "" {
		return append([]models.SlotType(nil), models.DefaultSlotTypes...), nil
	}

	parts := strings.Split(raw, ",")
	plan := make([]models.SlotType, 0, len(parts))
	for _, part := range parts {
		slotType := models.SlotType(strings.ToLower(strings.TrimSpace(part)))
		switch slotType {
		case models.SlotSpoken, models.SlotMCQ, models.SlotCoding:
			plan = append(plan, slotType)
		default:
			return nil, fmt.Errorf("unknown slot type in INTERVIEW_SLOT_PLAN: %q", part)
		}
	}
	return plan, nil
}

func parseDifficulties(raw string, slots int) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		if slots == len(models.DefaultSlotTypes) {
			return append([]string(nil), models.DefaultSlotDifficulties...), nil
		}
		// custom plan without an explicit ramp: medium throughout
		difficulties := make([]string, slots)
		for i := range difficulties {
			difficulties[i] = "medium"
		}
		return difficulties, nil
	}

	parts := strings.Split(raw, ",")
	difficulties := make([]string, 0, len(parts))
	for _, part := range parts {
		difficulty := strings.ToLower(strings.TrimSpace(part))
		if !models.ValidDifficulties[difficulty] {
			return nil, fmt.Errorf("unknown difficulty in INTERVIEW_SLOT_DIFFICULTIES: %q", part)
		}
		difficulties = append(difficulties, difficulty)
	}
	return difficulties, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

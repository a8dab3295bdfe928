package config

import (
	"testing"
	"time"

	"mockmate/interview/internal/models"
)

func clearPlanEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("INTERVIEW_SLOT_PLAN", "")
	t.Setenv("INTERVIEW_SLOT_DIFFICULTIES", "")
	t.Setenv("INTERVIEW_MAX_FOLLOW_UPS", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("SESSION_TTL", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearPlanEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Provider != "gemini" {
		t.Fatalf("expected provider gemini, got %s", cfg.Provider)
	}
	if cfg.MaxFollowUps != 2 {
		t.Fatalf("expected default max follow-ups 2, got %d", cfg.MaxFollowUps)
	}
	if len(cfg.SlotTypes) != 10 {
		t.Fatalf("expected 10-slot default plan, got %d", len(cfg.SlotTypes))
	}
	if cfg.SlotTypes[0] != models.SlotSpoken {
		t.Fatalf("expected warmup slot to be spoken, got %s", cfg.SlotTypes[0])
	}
	if len(cfg.SlotDifficulties) != len(cfg.SlotTypes) {
		t.Fatalf("expected difficulty per slot, got %d for %d slots",
			len(cfg.SlotDifficulties), len(cfg.SlotTypes))
	}
	if cfg.StoreBackend != "memory" {
		t.Fatalf("expected memory store default, got %s", cfg.StoreBackend)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session TTL 24h, got %s", cfg.SessionTTL)
	}
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	clearPlanEnv(t)
	t.Setenv("AI_PROVIDER", "unknown")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadConfig_CustomPlan(t *testing.T) {
	clearPlanEnv(t)
	t.Setenv("INTERVIEW_SLOT_PLAN", "spoken, mcq ,coding")
	t.Setenv("INTERVIEW_SLOT_DIFFICULTIES", "easy,medium,hard")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []models.SlotType{models.SlotSpoken, models.SlotMCQ, models.SlotCoding}
	for i, slotType := range want {
		if cfg.SlotTypes[i] != slotType {
			t.Fatalf("expected slot %d to be %s, got %s", i, slotType, cfg.SlotTypes[i])
		}
	}
	if cfg.SlotDifficulties[2] != "hard" {
		t.Fatalf("expected third slot hard, got %s", cfg.SlotDifficulties[2])
	}
}

func TestLoadConfig_CustomPlanDefaultDifficulties(t *testing.T) {
	clearPlanEnv(t)
	t.Setenv("INTERVIEW_SLOT_PLAN", "spoken,mcq")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.SlotDifficulties) != 2 || cfg.SlotDifficulties[0] != "medium" {
		t.Fatalf("expected medium fill for custom plan, got %v", cfg.SlotDifficulties)
	}
}

func TestLoadConfig_RejectsBadPlans(t *testing.T) {
	clearPlanEnv(t)

	t.Setenv("INTERVIEW_SLOT_PLAN", "spoken,karaoke")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown slot type")
	}

	t.Setenv("INTERVIEW_SLOT_PLAN", "mcq,spoken")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when plan does not open with a spoken slot")
	}

	t.Setenv("INTERVIEW_SLOT_PLAN", "spoken,mcq")
	t.Setenv("INTERVIEW_SLOT_DIFFICULTIES", "easy")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for mismatched difficulty count")
	}

	t.Setenv("INTERVIEW_SLOT_DIFFICULTIES", "easy,impossible")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("UNIT_TEST_ENV", "value")
	if got := getEnvOrDefault("UNIT_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %s", got)
	}

	t.Setenv("UNIT_TEST_ENV", "")
	if got := getEnvOrDefault("UNIT_TEST_ENV", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback value, got %s", got)
	}
}

func TestEnvParsers(t *testing.T) {
	t.Setenv("UNIT_TEST_INT", "7")
	if got := getEnvInt("UNIT_TEST_INT", 1); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	t.Setenv("UNIT_TEST_INT", "not a number")
	if got := getEnvInt("UNIT_TEST_INT", 1); got != 1 {
		t.Fatalf("expected fallback 1, got %d", got)
	}

	t.Setenv("UNIT_TEST_DUR", "90s")
	if got := getEnvDuration("UNIT_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %s", got)
	}
	t.Setenv("UNIT_TEST_DUR", "soon")
	if got := getEnvDuration("UNIT_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback 1m, got %s", got)
	}
}

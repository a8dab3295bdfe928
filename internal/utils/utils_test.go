package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNormalizeHelpers(t *testing.T) {
	if got := NormalizeDifficulty("  Medium "); got != "medium" {
		t.Fatalf("NormalizeDifficulty: expected medium, got %s", got)
	}

	if got := NormalizeRole("  Backend Engineer "); got != "Backend Engineer" {
		t.Fatalf("NormalizeRole: expected trimmed role, got %q", got)
	}
}

func TestStripFences(t *testing.T) {
	input := "```json\n{\"quality\": 7}\n```\n"
	want := "{\"quality\": 7}"

	if got := StripFences(input); got != want {
		t.Fatalf("StripFences: expected %q, got %q", want, got)
	}

	raw := "  {\"quality\": 7}  "
	if got := StripFences(raw); got != want {
		t.Fatalf("StripFences (no fences): expected trimmed string, got %q", got)
	}
}

func TestExtractJSONObject(t *testing.T) {
	wrapped := "Here is the evaluation:\n```json\n{\"quality\": 8}\n```\nHope that helps!"
	if got := ExtractJSONObject(wrapped); got != "{\"quality\": 8}" {
		t.Fatalf("ExtractJSONObject: unexpected result %q", got)
	}

	if got := ExtractJSONObject("no json here"); got != "" {
		t.Fatalf("ExtractJSONObject: expected empty string for prose, got %q", got)
	}
}

func TestGetLogger(t *testing.T) {
	Logger = nil
	if got := GetLogger(); got == nil {
		t.Fatal("GetLogger returned nil")
	}
	if Logger == nil {
		t.Fatal("GetLogger did not initialize the package logger")
	}
}

func TestJSONWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusTeapot, map[string]string{"status": "short and stout"})

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["status"] != "short and stout" {
		t.Fatalf("unexpected body: %v", body)
	}
}

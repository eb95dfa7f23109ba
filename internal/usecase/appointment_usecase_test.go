package usecase

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateBookingCode(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	code, err := generateBookingCode(date)
	if err != nil {
		t.Fatalf("generateBookingCode error: %v", err)
	}

	if !strings.HasPrefix(code, "APT-20260907-") {
		t.Errorf("code = %q, want APT-20260907- prefix", code)
	}
	suffix := strings.TrimPrefix(code, "APT-20260907-")
	if len(suffix) != 6 {
		t.Errorf("suffix %q length = %d, want 6", suffix, len(suffix))
	}
	for _, r := range suffix {
		if !strings.ContainsRune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", r) {
			t.Errorf("suffix %q contains disallowed rune %q", suffix, r)
		}
	}
}

func TestGenerateBookingCodeUnique(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateBookingCode(date)
		if err != nil {
			t.Fatalf("generateBookingCode error: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}

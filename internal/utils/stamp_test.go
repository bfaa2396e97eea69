package utils

import (
	"testing"
	"time"
)

func TestNowISOShape(t *testing.T) {
	stamp := NowISO()
	parsed, err := ParseISO(stamp)
	if err != nil {
		t.Fatalf("ParseISO(%q): %v", stamp, err)
	}
	if time.Since(parsed) > time.Minute {
		t.Errorf("stamp %q is not recent", stamp)
	}
	if len(stamp) != len("2006-01-02T15:04:05.000Z") {
		t.Errorf("stamp %q has unexpected length", stamp)
	}
}

func TestParseISOAcceptsRFC3339(t *testing.T) {
	if _, err := ParseISO("2025-06-01T12:00:00Z"); err != nil {
		t.Errorf("RFC3339 without milliseconds rejected: %v", err)
	}
	if _, err := ParseISO("2025-06-01T12:00:00.123Z"); err != nil {
		t.Errorf("millisecond stamp rejected: %v", err)
	}
	if _, err := ParseISO("yesterday"); err == nil {
		t.Error("garbage stamp accepted")
	}
}

func TestNewIDMonotonicEnough(t *testing.T) {
	a := NewID()
	time.Sleep(2 * time.Millisecond)
	b := NewID()
	if b <= a {
		t.Errorf("ids not increasing: %d then %d", a, b)
	}
}

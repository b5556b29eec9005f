package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateVoterID(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	id := GenerateVoterID(now)

	if !VoterIDPattern.MatchString(id) {
		t.Fatalf("generated id %q does not match voter id pattern", id)
	}
	if !strings.HasPrefix(id, "VTR-240601-") {
		t.Fatalf("expected date segment 240601 in %q", id)
	}
}

func TestValidOwnerCode(t *testing.T) {
	valid := []string{"Ow0000", "Ow1234", "Ow9999"}
	for _, code := range valid {
		if !ValidOwnerCode(code) {
			t.Errorf("expected %q to be accepted", code)
		}
	}

	invalid := []string{"", "OW1234", "ow1234", "Ow123", "Ow12345", "Ow12a4", " Ow1234"}
	for _, code := range invalid {
		if ValidOwnerCode(code) {
			t.Errorf("expected %q to be rejected", code)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"1234567", "+1234567", "123456789012345", "+22233445566"}
	for _, phone := range valid {
		if !ValidPhone(phone) {
			t.Errorf("expected %q to be accepted", phone)
		}
	}

	invalid := []string{"", "123456", "1234567890123456", "12a4567", "+12 34567", "++1234567"}
	for _, phone := range invalid {
		if ValidPhone(phone) {
			t.Errorf("expected %q to be rejected", phone)
		}
	}
}

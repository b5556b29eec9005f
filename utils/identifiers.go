package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/thanhpk/randstr"
)

var (
	// OwnerCodePattern matches residence owner identifiers: Ow + 4 digits.
	OwnerCodePattern = regexp.MustCompile(`^Ow\d{4}$`)

	// VoterIDPattern matches server-generated voter identifiers.
	VoterIDPattern = regexp.MustCompile(`^VTR-\d{6}-[0-9a-f]{4}$`)
)

func ValidOwnerCode(code string) bool {
	return OwnerCodePattern.MatchString(code)
}

// GenerateVoterID builds a voter identifier from a constant prefix, the
// issue date and a random suffix, e.g. VTR-240601-9f3a.
func GenerateVoterID(now time.Time) string {
	return "VTR-" + now.Format("060102") + "-" + strings.ToLower(randstr.Hex(4))
}

// ValidPhone accepts digits with an optional leading +, 7 to 15 characters.
func ValidPhone(phone string) bool {
	cleaned := strings.TrimPrefix(phone, "+")
	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

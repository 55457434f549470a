package utils

import "strings"

// NormalizePhoneNumber strips spaces and hyphens from a submitted phone
// number and prepends the default country code when none is present
func NormalizePhoneNumber(phone string, defaultCountryCode string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if cleaned == "" {
		return cleaned
	}
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = defaultCountryCode + cleaned
	}
	return cleaned
}

package logger

import (
	"regexp"
	"strings"
)

// RedactEmail masks an email address for safe logging.
// "john.doe@example.com" → "jo***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com"
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}

var isoDatePrefix = regexp.MustCompile(`^\s*(\d{4})-\d{1,2}-\d{1,2}`)

// RedactBirthDate keeps only the year of an ISO date.
// "1990-05-15" → "1990-**-**", "1990-05-15T10:00:00" → "1990-**-**"
// Anything that does not start with a date is fully masked.
func RedactBirthDate(val string) string {
	m := isoDatePrefix.FindStringSubmatch(val)
	if m == nil {
		return "***"
	}
	return m[1] + "-**-**"
}

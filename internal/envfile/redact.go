package envfile

import "strings"

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue masks value when key looks like a credential. Values of 4+
// runes keep their first 4 runes followed by "***"; shorter ones become "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if r := []rune(value); len(r) >= 4 {
				return string(r[:4]) + "***"
			}
			return "***"
		}
	}
	return value
}

// Redacted returns a copy of entries with credential values masked.
func Redacted(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Key: e.Key, Value: RedactValue(e.Key, e.Value)}
	}
	return out
}

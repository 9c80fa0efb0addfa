package logging

import "regexp"

// RedactedText replaces sensitive values in log output
const RedactedText = "[REDACTED]"

var (
	// password=xxx in key/value DSNs
	passwordPattern = regexp.MustCompile(`(?i)(password|pwd)=[^;&\s]+`)

	// user:pass@host in URL DSNs
	connStringPattern = regexp.MustCompile(`://[^:/\s]+:[^@\s]+@`)

	bearerPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]*`)
)

// SanitizeConnectionString removes credentials from a database or redis connection string
func SanitizeConnectionString(connStr string) string {
	if connStr == "" {
		return ""
	}
	sanitized := passwordPattern.ReplaceAllString(connStr, "${1}="+RedactedText)
	return connStringPattern.ReplaceAllString(sanitized, "://"+RedactedText+"@")
}

// SanitizeError strips credentials and bearer tokens from an error message
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	sanitized := passwordPattern.ReplaceAllString(err.Error(), "${1}="+RedactedText)
	sanitized = connStringPattern.ReplaceAllString(sanitized, "://"+RedactedText+"@")
	return bearerPattern.ReplaceAllString(sanitized, "Bearer "+RedactedText)
}

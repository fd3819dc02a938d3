package flow

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const minCredentialPartLen = 3

var (
	// ErrCredentialsFormat is returned when the message carries no colon separator.
	ErrCredentialsFormat = errors.New("credentials must be in login:password format")
	// ErrCredentialsShort is returned when login or password is shorter than three characters.
	ErrCredentialsShort = errors.New("login or password too short")
)

// ValidateCredentials checks a raw credentials message. The message must
// contain a colon; everything before the first colon is the login, the
// rest is the password, and both must be at least three characters long.
// Returns the trimmed credentials string on success.
func ValidateCredentials(raw string) (string, error) {
	creds := strings.TrimSpace(raw)
	if !strings.Contains(creds, ":") {
		return "", ErrCredentialsFormat
	}
	parts := strings.SplitN(creds, ":", 2)
	if utf8.RuneCountInString(parts[0]) < minCredentialPartLen ||
		utf8.RuneCountInString(parts[1]) < minCredentialPartLen {
		return "", ErrCredentialsShort
	}
	return creds, nil
}

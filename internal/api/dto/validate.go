package dto

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	letterRe   = regexp.MustCompile(`[a-zA-Z]`)
	digitRe    = regexp.MustCompile(`\d`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*]`)
)

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validateUsername requires at least 3 alphanumeric characters with at
// least one letter, so a username cannot be all digits.
func validateUsername(username string) string {
	if len(username) < 3 {
		return "username must be at least 3 characters long"
	}
	if !usernameRe.MatchString(username) || !letterRe.MatchString(username) {
		return "username must contain at least one letter and can include numbers"
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < 6 {
		return "password must be at least 6 characters long"
	}
	if !digitRe.MatchString(password) {
		return "password must contain at least one number"
	}
	if !specialRe.MatchString(password) {
		return "password must contain at least one special character"
	}
	return ""
}

func validURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	match, _ := regexp.MatchString(`^\+?[1-9]\d{1,14}$`, cleaned)
	return match
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateSlug accepts lowercase URL-safe slugs like "deep-clean".
func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

// ValidateDate accepts calendar dates in "YYYY-MM-DD" form.
func ValidateDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ValidateTime accepts 24-hour "HH:MM" strings.
func ValidateTime(t string) bool {
	return timeRegex.MatchString(t)
}

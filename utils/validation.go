package utils

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Password validation regex patterns
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// SanitizeString escapes HTML special characters and strips tags
func SanitizeString(input string) string {
	sanitized := html.EscapeString(strings.TrimSpace(input))

	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")

	return sanitized
}

// ValidateUsername checks if the username meets the requirements
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 {
		return false, "Username must be at least 3 characters long"
	}
	if len(username) > 20 {
		return false, "Username must not exceed 20 characters"
	}
	if !usernameRegex.MatchString(username) {
		return false, "Username can only contain letters, numbers, and underscores"
	}
	return true, ""
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidateBookTitle checks that a book title is present and within bounds
func ValidateBookTitle(title string) (bool, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, "Title is required"
	}
	if len(title) > 100 {
		return false, "Title must not exceed 100 characters"
	}
	return true, ""
}

// ValidateAuthor checks that an author name is present and within bounds
func ValidateAuthor(author string) (bool, string) {
	author = strings.TrimSpace(author)
	if author == "" {
		return false, "Author is required"
	}
	if len(author) > 100 {
		return false, "Author must not exceed 100 characters"
	}
	return true, ""
}

// ValidateRating checks that a rating is within 1-5
func ValidateRating(rating int) (bool, string) {
	if rating < 1 || rating > 5 {
		return false, "Rating must be between 1 and 5"
	}
	return true, ""
}

// ValidatePurchaseLink checks that a purchase link is a well-formed http(s) URL
func ValidatePurchaseLink(link string) (bool, string) {
	if link == "" {
		return true, "" // Purchase link is optional
	}
	if len(link) > 800 {
		return false, "Purchase link must not exceed 800 characters"
	}
	u, err := url.ParseRequestURI(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false, fmt.Sprintf("Invalid purchase link: %s", link)
	}
	return true, ""
}

// ValidateListName checks that a list name is present and within bounds
func ValidateListName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "List name is required"
	}
	if len(name) > 100 {
		return false, "List name must not exceed 100 characters"
	}
	return true, ""
}

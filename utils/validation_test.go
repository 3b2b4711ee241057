package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	ok, _ := ValidateUsername("ria_dsouza")
	assert.True(t, ok)

	ok, msg := ValidateUsername("ab")
	assert.False(t, ok)
	assert.Contains(t, msg, "at least 3")

	ok, _ = ValidateUsername(strings.Repeat("a", 21))
	assert.False(t, ok)

	ok, _ = ValidateUsername("bad name!")
	assert.False(t, ok)
}

func TestValidateEmail(t *testing.T) {
	ok, _ := ValidateEmail("reader@example.com")
	assert.True(t, ok)

	for _, email := range []string{"", "plain", "missing@tld", "@nouser.com"} {
		ok, _ := ValidateEmail(email)
		assert.False(t, ok, email)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("Readable1")
	assert.True(t, ok)

	cases := map[string]string{
		"Short1":        "at least 8",
		"alllower123":   "uppercase",
		"ALLUPPER123":   "lowercase",
		"NoNumbersHere": "number",
	}
	for password, want := range cases {
		ok, msg := ValidatePassword(password)
		assert.False(t, ok, password)
		assert.Contains(t, msg, want)
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		ok, _ := ValidateRating(rating)
		assert.True(t, ok)
	}
	for _, rating := range []int{0, 6, -1} {
		ok, _ := ValidateRating(rating)
		assert.False(t, ok)
	}
}

func TestValidatePurchaseLink(t *testing.T) {
	ok, _ := ValidatePurchaseLink("")
	assert.True(t, ok, "empty link is optional")

	ok, _ = ValidatePurchaseLink("https://example.com/book")
	assert.True(t, ok)

	for _, link := range []string{"ftp://example.com", "notaurl", "https://"} {
		ok, _ := ValidatePurchaseLink(link)
		assert.False(t, ok, link)
	}
}

func TestValidateBookTitleAndAuthor(t *testing.T) {
	ok, _ := ValidateBookTitle("  The Hobbit  ")
	assert.True(t, ok)

	ok, _ = ValidateBookTitle("   ")
	assert.False(t, ok)

	ok, _ = ValidateBookTitle(strings.Repeat("x", 101))
	assert.False(t, ok)

	ok, _ = ValidateAuthor("J.R.R. Tolkien")
	assert.True(t, ok)

	ok, _ = ValidateAuthor("")
	assert.False(t, ok)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>"), "<script>")
}

package sanitizer

import (
	"regexp"
	"strings"
)

var consecutiveDots = regexp.MustCompile(`\.{2,}`)

// NormalizeEmail lowercases and trims an address and consolidates
// consecutive dots in the local part. Values that do not look like an
// address at all come back with only trim/lowercase applied, so the
// validator still sees what the user typed.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") {
		return email
	}

	local = consecutiveDots.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// NormalizePhone keeps digits and a single leading plus sign, dropping
// spacing, dashes and parentheses.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := KeepDigits(phone)
	if plus {
		return "+" + digits
	}
	return digits
}

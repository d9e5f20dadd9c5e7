package portfolio

import (
	"errors"
	"regexp"

	"github.com/eringen/portfolio/content"
)

var (
	// ErrMissingFields is returned when any contact field is empty.
	ErrMissingFields = errors.New("All fields are required")
	// ErrInvalidEmail is returned when the email is not shaped like local@domain.tld.
	ErrInvalidEmail = errors.New("Invalid email format")
)

// emailChar is any character except "@" and whitespace, Unicode spaces
// included.
const emailChar = `[^\s\p{Z}\x0B\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + emailChar + `+@` + emailChar + `+\.` + emailChar + `+$`)

// ValidateContact checks that every field is set and the email looks like
// an address. The error text is shown to the sender as is.
func ValidateContact(m content.ContactMessage) error {
	if m.Name == "" || m.Email == "" || m.Subject == "" || m.Message == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(m.Email) {
		return ErrInvalidEmail
	}
	return nil
}

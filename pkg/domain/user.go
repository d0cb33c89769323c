package domain

import "regexp"

// User is the account summary returned with a session payload.
type User struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	RegistrationType string `json:"registrationType,omitempty"`
}

// FullName returns "First Last", trimming the space when either is empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Profile is the extended account record from the profile endpoint.
type Profile struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Account registration types.
const (
	RegistrationOwner    = "HOSTEL_OWNER"
	RegistrationHosteler = "HOSTLER"
)

// emailRe matches the loose local@domain.tld shape; not RFC 5322.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail returns true if s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

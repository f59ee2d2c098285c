package domain

import (
	"regexp"
	"strings"
)

const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRe = regexp.MustCompile(`^[0-9]{3,}$`)

	emailLocal = `[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*`
	emailLabel = `[A-Za-z0-9]+(-[A-Za-z0-9]+)*`
	emailRe    = regexp.MustCompile(`^` + emailLocal + `@(` + emailLabel + `\.)*` + emailLabel + `$`)
)

// Name is a contact's display name. Two names refer to the same contact when
// they are equal ignoring case.
type Name struct{ value string }

func IsValidName(s string) bool { return nameRe.MatchString(s) }

func NewName(s string) (Name, error) {
	v, err := validated(s, IsValidName, NameConstraints)
	return Name{value: v}, err
}

func (n Name) String() string { return n.value }
func (n Name) IsZero() bool { return n.value == "" }
func (n Name) MarshalText() ([]byte, error) { return []byte(n.value), nil }
func (n Name) SameAs(other Name) bool { return strings.EqualFold(n.value, other.value) }
func (n Name) Less(other Name) bool { return strings.ToLower(n.value) < strings.ToLower(other.value) }

// Phone holds digits only.
type Phone struct{ value string }

func IsValidPhone(s string) bool { return phoneRe.MatchString(s) }

func NewPhone(s string) (Phone, error) {
	v, err := validated(s, IsValidPhone, PhoneConstraints)
	return Phone{value: v}, err
}

func (p Phone) String() string { return p.value }
func (p Phone) MarshalText() ([]byte, error) { return []byte(p.value), nil }

// Email is a local-part@domain address.
type Email struct{ value string }

func IsValidEmail(s string) bool {
	if !emailRe.MatchString(s) {
		return false
	}
	labels := strings.Split(s[strings.LastIndexByte(s, '@')+1:], ".")
	return len(labels[len(labels)-1]) >= 2
}

func NewEmail(s string) (Email, error) {
	v, err := validated(s, IsValidEmail, EmailConstraints)
	return Email{value: v}, err
}

func (e Email) String() string { return e.value }
func (e Email) MarshalText() ([]byte, error) { return []byte(e.value), nil }

// Address is free text that must not be blank.
type Address struct{ value string }

func IsValidAddress(s string) bool { return notBlank.MatchString(s) }

func NewAddress(s string) (Address, error) {
	v, err := validated(s, IsValidAddress, AddressConstraints)
	return Address{value: v}, err
}

func (a Address) String() string { return a.value }
func (a Address) MarshalText() ([]byte, error) { return []byte(a.value), nil }

package booking

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long (max 100 characters)")
	ErrInvalidEmail        = errors.New("customer email is invalid")
	ErrInvalidCardLast4    = errors.New("card tail must be exactly 4 digits")
)

const MaxCustomerNameLength = 100

// Customer is who a booking is made for. Only the last four card digits are ever held.
type Customer struct {
	name      string
	email     string
	cardLast4 string
}

func NewCustomer(name, email, cardLast4 string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}

	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Customer{}, ErrInvalidEmail
	}

	cardLast4 = strings.TrimSpace(cardLast4)
	if !IsCardLast4(cardLast4) {
		return Customer{}, ErrInvalidCardLast4
	}

	return Customer{name: name, email: email, cardLast4: cardLast4}, nil
}

// IsCardLast4 reports whether s is exactly four ASCII digits.
func IsCardLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c Customer) Name() string      { return c.name }
func (c Customer) Email() string     { return c.email }
func (c Customer) CardLast4() string { return c.cardLast4 }

func (c Customer) MaskedCard() string {
	return "**** **** **** " + c.cardLast4
}

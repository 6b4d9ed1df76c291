// Package phone validates and normalises tutor phone numbers.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalid is returned for input that cannot be a phone number in the region.
var ErrInvalid = errors.New("invalid phone number")

// Normalize parses raw using region for numbers without a country code and
// returns it in E.164 form. Only the number's length is checked against the
// numbering plan, so well-formed test numbers are accepted.
func Normalize(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalid
	}
	num, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", ErrInvalid
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return "", ErrInvalid
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Valid reports whether raw normalises successfully.
func Valid(raw, region string) bool {
	_, err := Normalize(raw, region)
	return err == nil
}

package processo

import "strings"

// Parity is the even/odd classification of a processo key.
// Values are the labels written to the exported workbook.
type Parity string

const (
	// Even is the label for keys with an even numeric prefix.
	Even Parity = "PAR"
	// Odd is the label for keys with an odd numeric prefix.
	Odd Parity = "ÍMPAR"
	// Unknown tags rows whose key could not be parsed, when that policy is enabled.
	Unknown Parity = "INDEFINIDO"
)

// String returns the parity label.
func (p Parity) String() string {
	return string(p)
}

// Key is a parsed processo key.
type Key struct {
	// Raw is the trimmed original value.
	Raw string
	// Prefix holds the digits before the first "-", as written.
	Prefix string
	// Suffix is everything after the first "-".
	Suffix string
}

// Parity returns the classification of the key prefix.
func (k Key) Parity() Parity {
	if k.Prefix == "" {
		return Unknown
	}
	if (k.Prefix[len(k.Prefix)-1]-'0')%2 == 0 {
		return Even
	}
	return Odd
}

// ParseKey splits a key on its first "-" and validates the numeric prefix.
// Whitespace around the whole key and around the prefix is tolerated, as is a
// leading "+". The prefix may have any number of digits.
func ParseKey(raw string) (Key, error) {
	trimmed := strings.TrimSpace(raw)
	prefix, suffix, found := strings.Cut(trimmed, "-")
	if !found {
		return Key{}, &MalformedKeyError{Key: raw}
	}

	digits := strings.TrimPrefix(strings.TrimSpace(prefix), "+")
	if !isDigits(digits) {
		return Key{}, &MalformedKeyError{Key: raw}
	}

	return Key{Raw: trimmed, Prefix: digits, Suffix: suffix}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Classify returns the parity of a raw key.
func Classify(raw string) (Parity, error) {
	k, err := ParseKey(raw)
	if err != nil {
		return "", err
	}
	return k.Parity(), nil
}

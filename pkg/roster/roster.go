// Package roster maps normalized phone numbers to player names, one
// directory per league. Directories are plain values built once per
// extraction run; nothing in here is ambient state.
package roster

import "strings"

// Directory is a read-only phone-to-player lookup table for one
// league. Safe for concurrent readers once built.
type Directory struct {
	byPhone map[string]string
}

func NewDirectory() *Directory {
	return &Directory{byPhone: make(map[string]string)}
}

// Add registers a player under every digit form of the given phone
// number, so lookups succeed whether the scraped token carried the
// country code or not.
func (d *Directory) Add(name, phone string) {
	digits := Digits(phone)
	if digits == "" || name == "" {
		return
	}
	d.byPhone[digits] = name
	canon, _ := Canonical(digits)
	d.byPhone[canon] = name
}

// Len returns the number of distinct digit forms registered.
func (d *Directory) Len() int {
	return len(d.byPhone)
}

// Digits strips everything but ASCII digits from a raw sender token.
// Google Voice pads hidden-element numbers with spaces and Unicode
// directional marks; all of that goes.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Canonical normalizes a digit string to the 11-digit national form
// with a leading country-code 1. The second return is false for
// lengths that cannot be normalized; those pass through unmodified as
// low-confidence.
func Canonical(digits string) (string, bool) {
	switch {
	case len(digits) == 10:
		return "1" + digits, true
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return digits, true
	default:
		return digits, false
	}
}

// Resolve maps a raw sender token to a player name. The canonical
// 11-digit form is tried first, then the bare 10-digit form, then the
// 1-prefixed form. A total miss returns ok=false; unregistered senders
// are common and non-fatal.
func (d *Directory) Resolve(rawToken string) (string, bool) {
	digits := Digits(rawToken)
	if digits == "" {
		return "", false
	}

	canon, _ := Canonical(digits)
	if name, ok := d.byPhone[canon]; ok {
		return name, true
	}

	bare := digits
	if len(bare) == 11 && strings.HasPrefix(bare, "1") {
		bare = bare[1:]
	}
	if name, ok := d.byPhone[bare]; ok {
		return name, true
	}
	if len(bare) == 10 {
		if name, ok := d.byPhone["1"+bare]; ok {
			return name, true
		}
	}
	return "", false
}

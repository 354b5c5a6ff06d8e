// Package timezones resolves user-supplied timezone input to a canonical
// zone name from the system timezone database.
package timezones

import (
	"errors"
	"strings"
	"time"
)

// ErrUnknownTimezone is returned for input that is neither a known
// abbreviation nor a valid zone name.
var ErrUnknownTimezone = errors.New("unknown timezone")

// abbreviations maps the US timezone shorthands users actually type to the
// canonical zone the bot stores.
var abbreviations = map[string]string{
	"ET":  "US/Eastern",
	"EST": "US/Eastern",
	"CST": "US/Central",
	"CDT": "US/Central",
	"MST": "US/Mountain",
	"MDT": "US/Mountain",
	"PST": "US/Pacific",
	"PDT": "US/Pacific",
}

// aliases folds the IANA spellings of the four US zones onto the same
// canonical names the abbreviations use, so a guild configured with
// "America/New_York" and one configured with "ET" store the same value.
var aliases = map[string]string{
	"America/New_York":    "US/Eastern",
	"America/Chicago":     "US/Central",
	"America/Denver":      "US/Mountain",
	"America/Los_Angeles": "US/Pacific",
}

// Resolve maps a user-supplied timezone to its canonical name, validating it
// against the system timezone database. It returns ErrUnknownTimezone for
// anything it can't resolve.
func Resolve(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrUnknownTimezone
	}

	if canonical, ok := abbreviations[strings.ToUpper(name)]; ok {
		name = canonical
	} else if canonical, ok := aliases[name]; ok {
		name = canonical
	}

	if _, err := time.LoadLocation(name); err != nil {
		return "", ErrUnknownTimezone
	}

	return name, nil
}

package timezones

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"eastern abbreviation", "ET", "US/Eastern", false},
		{"lowercase abbreviation", "est", "US/Eastern", false},
		{"central abbreviation", "CST", "US/Central", false},
		{"mountain daylight", "MDT", "US/Mountain", false},
		{"pacific abbreviation", "PST", "US/Pacific", false},
		{"iana eastern alias", "America/New_York", "US/Eastern", false},
		{"iana central alias", "America/Chicago", "US/Central", false},
		{"iana pacific alias", "America/Los_Angeles", "US/Pacific", false},
		{"canonical passes through", "US/Pacific", "US/Pacific", false},
		{"non-us zone passes through", "Europe/Paris", "Europe/Paris", false},
		{"utc", "UTC", "UTC", false},
		{"surrounding whitespace", " ET ", "US/Eastern", false},
		{"unknown zone", "Mars/Nowhere", "", true},
		{"empty input", "", "", true},
		{"garbage", "not a zone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if tt.wantErr {
				if err != ErrUnknownTimezone {
					t.Errorf("Resolve(%q) error = %v, want ErrUnknownTimezone", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

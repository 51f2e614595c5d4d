package core

import (
	"errors"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	date := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	tests := []struct {
		hour int
		want string
	}{
		{0, "2024-01-01-0"},
		{5, "2024-01-01-5"},
		{23, "2024-01-01-23"},
	}
	for _, tt := range tests {
		if got := Key(date, tt.hour); got != tt.want {
			t.Errorf("Key(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantDate string
		wantHour int
		wantErr  bool
	}{
		{name: "Single digit hour", key: "2024-01-01-5", wantDate: "2024-01-01", wantHour: 5},
		{name: "Two digit hour", key: "2024-12-31-23", wantDate: "2024-12-31", wantHour: 23},
		{name: "Midnight", key: "2024-03-10-0", wantDate: "2024-03-10", wantHour: 0},
		{name: "Zero padded", key: "2024-01-01-05", wantErr: true},
		{name: "Hour out of range", key: "2024-01-01-24", wantErr: true},
		{name: "Missing hour", key: "2024-01-01-", wantErr: true},
		{name: "Bad date", key: "2024-13-01-5", wantErr: true},
		{name: "Garbage", key: "notes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, hour, err := ParseKey(tt.key, time.UTC)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("expected ErrInvalidKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := date.Format(DateLayout); got != tt.wantDate {
				t.Errorf("date = %s, want %s", got, tt.wantDate)
			}
			if hour != tt.wantHour {
				t.Errorf("hour = %d, want %d", hour, tt.wantHour)
			}
			if Key(date, hour) != tt.key {
				t.Errorf("Key(ParseKey(%q)) = %q", tt.key, Key(date, hour))
			}
		})
	}
}

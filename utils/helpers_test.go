package utils

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expYear  int
		expMonth time.Month
		expErr   bool
	}{
		{name: "valid month", input: "2024-03", expYear: 2024, expMonth: time.March},
		{name: "december", input: "2023-12", expYear: 2023, expMonth: time.December},
		{name: "missing padding", input: "2024-3", expErr: true},
		{name: "full date", input: "2024-03-01", expErr: true},
		{name: "garbage", input: "not-a-month", expErr: true},
		{name: "empty", input: "", expErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			year, month, err := ParseMonth(tc.input)
			if tc.expErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if year != tc.expYear || month != tc.expMonth {
				t.Fatalf("expected %d-%d, got %d-%d", tc.expYear, tc.expMonth, year, month)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if err := ParseDate("2024-02-29"); err != nil {
		t.Fatalf("unexpected error for leap day: %v", err)
	}
	if err := ParseDate("2023-02-29"); err == nil {
		t.Fatalf("expected error for nonexistent date")
	}
	if err := ParseDate("2024/02/01"); err == nil {
		t.Fatalf("expected error for wrong separator")
	}
}

func TestIsValidAttendanceStatus(t *testing.T) {
	for _, valid := range []string{"Full Day", "Half Day", "Absent", "Holiday"} {
		if !IsValidAttendanceStatus(valid) {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"full day", "Present", "", "FULL DAY"} {
		if IsValidAttendanceStatus(invalid) {
			t.Fatalf("expected %q to be invalid", invalid)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, valid := range []string{"admin", "teacher", "student"} {
		if !IsValidRole(valid) {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	if IsValidRole("owner") {
		t.Fatalf("expected owner to be invalid")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("password must not be stored as entered")
	}
	if err := CheckPassword("secret123", hash); err != nil {
		t.Fatalf("expected password to verify: %v", err)
	}
	if err := CheckPassword("wrong", hash); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  Bob\x00  "); got != "Bob" {
		t.Fatalf("expected Bob, got %q", got)
	}
}

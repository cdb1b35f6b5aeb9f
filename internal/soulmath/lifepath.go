package soulmath

import (
	"fmt"
	"strings"
	"time"
)

// LifePathNumber is a reduced numerology value in {1..9, 11, 22, 33}.
// The zero value means "no result".
type LifePathNumber int

// IsMaster reports whether n is one of the master numbers 11, 22 or 33.
func (n LifePathNumber) IsMaster() bool {
	return n == 11 || n == 22 || n == 33
}

// Valid reports whether n is a value LifePath can produce.
func (n LifePathNumber) Valid() bool {
	return (n >= 1 && n <= 9) || n.IsMaster()
}

// BirthDate is a calendar date read exactly as written; no timezone
// conversion is applied.
type BirthDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// midnight is appended to date-only input so parsing never depends on the
// local zone.
const midnight = "T00:00:00"

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// ParseBirthDate parses an ISO-8601 date, optionally followed by a time.
// The time and any zone offset are ignored; the written calendar date wins.
// Errors never echo the input, since birth dates are PII.
func ParseBirthDate(s string) (BirthDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BirthDate{}, fmt.Errorf("empty date: %w", ErrInvalidDate)
	}
	if !strings.Contains(s, "T") {
		s += midnight
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return BirthDate{Year: y, Month: int(m), Day: d}, nil
	}
	return BirthDate{}, fmt.Errorf("unrecognized date layout: %w", ErrInvalidDate)
}

// ReduceDigits sums the decimal digits of n until it reaches a single digit
// or a master number. Negative input is treated as its absolute value.
func ReduceDigits(n int) LifePathNumber {
	if n < 0 {
		n = -n
	}
	for n > 9 && !LifePathNumber(n).IsMaster() {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return LifePathNumber(n)
}

// LifePath returns the life path number for d.
func (d BirthDate) LifePath() LifePathNumber {
	return ReduceDigits(d.Day + d.Month + d.Year)
}

// LifePath parses date and returns its life path number. Unparseable input
// yields an error wrapping ErrInvalidDate.
func LifePath(date string) (LifePathNumber, error) {
	bd, err := ParseBirthDate(date)
	if err != nil {
		return 0, err
	}
	return bd.LifePath(), nil
}

// LifePathNumberOf is LifePath for callers that treat 0 as "unknown".
func LifePathNumberOf(date string) int {
	n, err := LifePath(date)
	if err != nil {
		return 0
	}
	return int(n)
}

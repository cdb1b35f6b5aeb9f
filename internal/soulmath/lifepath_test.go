package soulmath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLifePath(t *testing.T) {
	tests := []struct {
		name string
		date string
		want LifePathNumber
	}{
		{"plain date", "1990-05-15", 3},
		{"reduces twice", "2003-11-29", 9},
		{"stops at 11", "1990-09-10", 11},
		{"stops at 22", "1970-04-10", 22},
		{"stops at 33", "0020-06-07", 33},
		{"single digit sum", "0001-01-01", 3},
		{"time suffix ignored", "1990-05-15T23:59:59", 3},
		{"short time suffix", "1990-05-15T10:30", 3},
		{"zone offset not applied", "1990-05-15T23:30:00-05:00", 3},
		{"utc designator", "1990-05-15T00:00:00Z", 3},
		{"surrounding whitespace", "  2003-11-29 ", 9},
		{"leap day", "2000-02-29", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LifePath(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int(tt.want), LifePathNumberOf(tt.date))
		})
	}
}

func TestLifePathInvalid(t *testing.T) {
	for _, in := range []string{"not-a-date", "", "2023-02-30", "1990-13-01", "1990/05/15", "15-05-1990"} {
		n, err := LifePath(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
		assert.Zero(t, n)
		assert.Equal(t, 0, LifePathNumberOf(in), "input %q", in)
		if in != "" {
			assert.NotContains(t, err.Error(), in, "error must not echo the input")
		}
	}
}

func TestReduceDigits(t *testing.T) {
	tests := map[int]LifePathNumber{
		0:    0,
		9:    9,
		10:   1,
		11:   11,
		29:   11,
		38:   11,
		2010: 3,
		2043: 9,
		1984: 22,
		-15:  6,
	}
	for in, want := range tests {
		assert.Equal(t, want, ReduceDigits(in), "input %d", in)
	}
}

func TestLifePathNumberPredicates(t *testing.T) {
	for _, n := range []LifePathNumber{11, 22, 33} {
		assert.True(t, n.IsMaster())
		assert.True(t, n.Valid())
	}
	assert.False(t, LifePathNumber(0).Valid())
	assert.False(t, LifePathNumber(10).Valid())
	assert.False(t, LifePathNumber(9).IsMaster())
}

func TestParseBirthDate(t *testing.T) {
	bd, err := ParseBirthDate("1988-07-04T08:15:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, BirthDate{Year: 1988, Month: 7, Day: 4}, bd)
	assert.Equal(t, "1988-07-04", bd.String())
}

func TestLifePathProperties(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	rapid.Check(t, func(t *rapid.T) {
		offset := rapid.IntRange(0, 200*366).Draw(t, "offset_days")
		d := start.AddDate(0, 0, offset)

		n, err := LifePath(d.Format("2006-01-02"))
		if err != nil {
			t.Fatalf("valid date %s rejected: %v", d.Format("2006-01-02"), err)
		}
		if !n.Valid() {
			t.Fatalf("%s produced out-of-range life path %d", d.Format("2006-01-02"), n)
		}
		if want := ReduceDigits(d.Day() + int(d.Month()) + d.Year()); n != want {
			t.Fatalf("%s: got %d, want %d", d.Format("2006-01-02"), n, want)
		}
	})
}

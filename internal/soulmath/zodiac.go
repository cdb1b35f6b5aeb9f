package soulmath

import "fmt"

// Sign is a tropical zodiac sign.
type Sign string

const (
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
)

// Signs returns the twelve signs in calendar order, starting with the sign
// that covers the beginning of January.
func Signs() []Sign {
	return []Sign{
		Capricorn, Aquarius, Pisces, Aries, Taurus, Gemini,
		Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius,
	}
}

var spanishLabels = map[Sign]string{
	Capricorn:   "Capricornio",
	Aquarius:    "Acuario",
	Pisces:      "Piscis",
	Aries:       "Aries",
	Taurus:      "Tauro",
	Gemini:      "Géminis",
	Cancer:      "Cáncer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Escorpio",
	Sagittarius: "Sagitario",
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	_, ok := spanishLabels[s]
	return ok
}

// Localized returns the display label for lang ("es" or "en"). Unknown
// languages get the English label.
func (s Sign) Localized(lang string) string {
	if lang == "es" {
		if label, ok := spanishLabels[s]; ok {
			return label
		}
	}
	return string(s)
}

// zodiacBoundary names the sign that ends on endDay of a given month.
type zodiacBoundary struct {
	sign   Sign
	endDay int
}

// boundaries returns the lookup table indexed by month-1. The 13th entry
// wraps back to Capricorn so late-December days resolve through the same
// comparison as every other month.
func boundaries() [13]zodiacBoundary {
	return [13]zodiacBoundary{
		{Capricorn, 19},
		{Aquarius, 18},
		{Pisces, 20},
		{Aries, 19},
		{Taurus, 20},
		{Gemini, 20},
		{Cancer, 22},
		{Leo, 22},
		{Virgo, 22},
		{Libra, 22},
		{Scorpio, 21},
		{Sagittarius, 21},
		{Capricorn, 31},
	}
}

// daysInMonth holds month lengths in a leap year so Feb 29 birthdays pass.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ZodiacSign returns the sign covering day/month. Both values are validated;
// bad input yields an error wrapping ErrInvalidInput.
func ZodiacSign(day, month int) (Sign, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month %d out of range 1-12: %w", month, ErrInvalidInput)
	}
	if day < 1 || day > daysInMonth[month-1] {
		return "", fmt.Errorf("day %d out of range for month %d: %w", day, month, ErrInvalidInput)
	}
	return ZodiacSignUnchecked(day, month), nil
}

// ZodiacSignUnchecked performs the raw table lookup without validating day.
// A day past the month's boundary simply picks the following sign. It
// returns "" when month is outside 1-12.
func ZodiacSignUnchecked(day, month int) Sign {
	if month < 1 || month > 12 {
		return ""
	}
	table := boundaries()
	if day <= table[month-1].endDay {
		return table[month-1].sign
	}
	return table[month].sign
}

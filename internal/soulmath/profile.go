package soulmath

// Profile bundles the values derived from a single birth date.
type Profile struct {
	BirthDate BirthDate      `json:"birth_date"`
	Sign      Sign           `json:"sign"`
	LifePath  LifePathNumber `json:"life_path"`
}

// NewProfile parses date once and derives both the sign and the life path.
func NewProfile(date string) (Profile, error) {
	bd, err := ParseBirthDate(date)
	if err != nil {
		return Profile{}, err
	}
	sign, err := ZodiacSign(bd.Day, bd.Month)
	if err != nil {
		return Profile{}, err
	}
	return Profile{BirthDate: bd, Sign: sign, LifePath: bd.LifePath()}, nil
}

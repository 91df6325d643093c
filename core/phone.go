package core

// PhoneNormalizer maps arbitrary user-entered phone strings to a canonical
// international identifier in +<countrycode><subscriber> form.
//
// Implementations return ErrInvalidPhone when the input carries no digits at
// all; anything else normalizes best-effort.
type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

// RomanianPlan normalizes mobile numbers of the Romanian numbering plan
// (country code +40, national trunk prefix "07"). Inputs that match none of
// the national shapes fall through to a bare "+<digits>" — the historical
// behavior callers rely on, so over-short inputs are not rejected here.
type RomanianPlan struct{}

func (RomanianPlan) Normalize(raw string) (string, error) {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return "", ErrInvalidPhone
	}

	switch {
	case len(digits) == 10 && digits[0] == '0' && digits[1] == '7':
		// 07XXXXXXXX -> +407XXXXXXXX
		return "+40" + string(digits[1:]), nil
	case len(digits) == 9 && digits[0] == '7':
		// 7XXXXXXXX -> +407XXXXXXXX
		return "+40" + string(digits), nil
	case len(digits) == 11 && digits[0] == '4' && digits[1] == '0' && digits[2] == '7':
		// 407XXXXXXXX -> +407XXXXXXXX
		return "+" + string(digits), nil
	}
	return "+" + string(digits), nil
}

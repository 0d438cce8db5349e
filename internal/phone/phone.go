package phone

import "regexp"

// International format: leading +, 8 to 15 digits, no leading zero (E.164).
var e164 = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

func IsValid(s string) bool {
	return e164.MatchString(s)
}

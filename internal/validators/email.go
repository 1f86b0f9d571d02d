package validators

import "regexp"

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}

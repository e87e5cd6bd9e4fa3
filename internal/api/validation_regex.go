package api

import "regexp"

var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordLetterRegex = regexp.MustCompile(`\p{L}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

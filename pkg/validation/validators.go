package validation

import (
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Allow letters, numbers, spaces, and common name punctuation: . ' -
var nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("strong_password", StrongPassword)
	_ = v.RegisterValidation("skill_list", SkillList)
}

// ValidName validates that a string contains only valid name characters.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// StrongPassword requires at least 8 characters with a letter and a digit.
func StrongPassword(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if len(val) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range val {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// SkillList validates a []string of skills: each entry non-empty and short.
func SkillList(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		s := field.Index(i).String()
		if s == "" || len(s) > 64 {
			return false
		}
	}
	return true
}

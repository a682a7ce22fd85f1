package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var (
	hasSpaces  = regexp.MustCompile(`\s+`)
	stateRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ().\-]{7,25}$`)
)

var addressTypes = map[string]bool{
	"billing":   true,
	"shipping":  true,
	"warehouse": true,
	"pickup":    true,
}

// Register installs every custom tag on validate.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
	_ = validate.RegisterValidation("usstate", USState)
	_ = validate.RegisterValidation("phone", Phone)
	_ = validate.RegisterValidation("addresstype", AddressType)
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

// USState accepts two uppercase letters.
func USState(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'usstate' applied to non-string type: %s\n", field.Kind().String())
		return false
	}
	return stateRegex.MatchString(field.String())
}

func Phone(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'phone' applied to non-string type: %s\n", field.Kind().String())
		return false
	}

	digits := 0
	for _, ch := range field.String() {
		if ch >= '0' && ch <= '9' {
			digits++
		}
	}
	return digits >= 7 && phoneRegex.MatchString(field.String())
}

func AddressType(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return addressTypes[field.String()]
}

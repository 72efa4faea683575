package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("imo", validateIMO)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateIMO checks the IMO ship identifier: seven digits where the
// first six, weighted 7 down to 2, sum to a number whose last digit is
// the seventh digit.
func validateIMO(fl validator.FieldLevel) bool {
	return IsValidIMO(fl.Field().Int())
}

func IsValidIMO(imo int64) bool {
	if imo < 1000000 || imo > 9999999 {
		return false
	}

	check := imo % 10
	rest := imo / 10
	sum := int64(0)
	for weight := int64(2); weight <= 7; weight++ {
		sum += (rest % 10) * weight
		rest /= 10
	}
	return sum%10 == check
}

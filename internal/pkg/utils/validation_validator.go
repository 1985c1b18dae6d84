package utils

import (
	"regexp"
	"time"

	"atenda-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("time_hm", validateTimeHM)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(`[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};':"\\|,.<>\/?]`).MatchString(password)
	hasUppercase := regexp.MustCompile(`[A-Z]`).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	return re.MatchString(phoneNumber)
}

func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	_, err := time.Parse(constvars.AppointmentDateLayout, value)
	return err == nil
}

func validateTimeHM(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	_, err := time.Parse(constvars.AppointmentTimeLayout, value)
	return err == nil
}

package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Photography service validation
	validate.RegisterValidation("service", func(fl validator.FieldLevel) bool {
		service := fl.Field().String()
		validServices := []string{"wedding", "event", "portrait", "commercial"}
		for _, s := range validServices {
			if service == s {
				return true
			}
		}
		return false
	})

	// Booking time slot validation
	validate.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		slot := fl.Field().String()
		validSlots := []string{
			"9:00 AM - 11:00 AM",
			"11:30 AM - 1:30 PM",
			"2:00 PM - 4:00 PM",
			"4:30 PM - 6:30 PM",
		}
		for _, s := range validSlots {
			if slot == s {
				return true
			}
		}
		return false
	})

	// Booking status validation
	validate.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"pending", "confirmed", "cancelled"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "service":
			errors[field] = "Invalid service. Must be: wedding, event, portrait, or commercial"
		case "time_slot":
			errors[field] = "Invalid time slot"
		case "booking_status":
			errors[field] = "Invalid status. Must be: pending, confirmed, or cancelled"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

package core

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	alphaNumUnderTag   = "alphanum_"
	alphaNumUnderText  = "only alphanumeric characters and underscores are allowed"
	alphaNumUnderRegex = regexp.MustCompile(`^[\w\s]+$`)

	notBlankTag  = "notblank"
	notBlankText = "this field cannot be blank"

	campusEmailTag = "campusemail"
	rollNumberTag  = "rollnumber"

	otpTag   = "otp"
	otpText  = "code must be exactly 6 digits"
	otpRegex = regexp.MustCompile(`^[0-9]{6}$`)

	dateTag  = "isodate"
	dateText = "date must be formatted as YYYY-MM-DD"

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator, auth AuthConfig) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(alphaNumUnderTag, alphaNumUnderValidation)
	RegisterCustomTranslation(validate, translator, alphaNumUnderTag, alphaNumUnderText)

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(validate, translator, notBlankTag, notBlankText)

	_ = validate.RegisterValidation(campusEmailTag, func(fl validator.FieldLevel) bool {
		return ValidCampusEmail(fl.Field().String(), auth.EmailDomain)
	})
	RegisterCustomTranslation(validate, translator, campusEmailTag, "email must end with "+auth.EmailDomain)

	_ = validate.RegisterValidation(rollNumberTag, func(fl validator.FieldLevel) bool {
		return ValidRollNumber(fl.Field().String(), auth.RollNumberPrefix)
	})
	RegisterCustomTranslation(validate, translator, rollNumberTag, fmt.Sprintf("roll number must start with %s", auth.RollNumberPrefix))

	_ = validate.RegisterValidation(otpTag, func(fl validator.FieldLevel) bool {
		return ValidOTP(fl.Field().String())
	})
	RegisterCustomTranslation(validate, translator, otpTag, otpText)

	_ = validate.RegisterValidation(dateTag, func(fl validator.FieldLevel) bool {
		return ValidDate(fl.Field().String())
	})
	RegisterCustomTranslation(validate, translator, dateTag, dateText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidCampusEmail reports whether email ends with the institutional domain (case-insensitive).
func ValidCampusEmail(email, domain string) bool {
	email = CleanString(email, true /* lower */)
	return len(email) > len(domain) && strings.HasSuffix(email, strings.ToLower(domain))
}

// ValidRollNumber reports whether a student roll number starts with the institutional prefix.
func ValidRollNumber(roll, prefix string) bool {
	return strings.HasPrefix(CleanString(roll), prefix)
}

// ValidOTP reports whether code is exactly 6 ASCII digits.
func ValidOTP(code string) bool {
	return otpRegex.MatchString(code)
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Custom Global Validators

// alphaNumUnderValidation only allows alphanumeric characters and underscores.
func alphaNumUnderValidation(fl validator.FieldLevel) bool {
	return alphaNumUnderRegex.MatchString(fl.Field().String())
}

func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

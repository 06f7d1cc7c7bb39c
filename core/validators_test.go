package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator, NewTestConfig().Auth)

	type form struct {
		Email string `json:"email" validate:"required,campusemail"`
		Roll  string `json:"roll_number" validate:"omitempty,rollnumber"`
		Code  string `json:"code" validate:"omitempty,otp"`
		Date  string `json:"date" validate:"omitempty,isodate"`
		Name  string `json:"name" validate:"omitempty,notblank"`
	}

	tests := []struct {
		name     string
		form     form
		wantErrs map[string]string
	}{
		{name: "valid", form: form{Email: "a@psgitech.ac.in", Roll: "7155000123", Code: "123456", Date: "2025-12-10", Name: "Anjali"}},
		{name: "required", form: form{}, wantErrs: map[string]string{"email": "this field is required"}},
		{name: "foreign email", form: form{Email: "a@gmail.com"}, wantErrs: map[string]string{"email": "email must end with @psgitech.ac.in"}},
		{name: "bare domain", form: form{Email: "@psgitech.ac.in"}, wantErrs: map[string]string{"email": "email must end with @psgitech.ac.in"}},
		{name: "wrong roll prefix", form: form{Email: "a@psgitech.ac.in", Roll: "6155000123"}, wantErrs: map[string]string{"roll_number": "roll number must start with 7155"}},
		{name: "short otp", form: form{Email: "a@psgitech.ac.in", Code: "12345"}, wantErrs: map[string]string{"code": "code must be exactly 6 digits"}},
		{name: "alpha otp", form: form{Email: "a@psgitech.ac.in", Code: "12a456"}, wantErrs: map[string]string{"code": "code must be exactly 6 digits"}},
		{name: "bad date", form: form{Email: "a@psgitech.ac.in", Date: "10/12/2025"}, wantErrs: map[string]string{"date": "date must be formatted as YYYY-MM-DD"}},
		{name: "blank name", form: form{Email: "a@psgitech.ac.in", Name: "   "}, wantErrs: map[string]string{"name": "this field cannot be blank"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.form)
			if tt.wantErrs == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)

			got := make(map[string]string, len(vErrs))
			for _, vErr := range vErrs {
				got[vErr.Field()] = vErr.Translate(translator)
			}
			assert.Equal(t, tt.wantErrs, got)
		})
	}
}

func TestValidOTP(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"100000", true},
		{"999999", true},
		{"", false},
		{"1234567", false},
		{"١٢٣٤٥٦", false}, // non-ASCII digits
		{" 12345", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidOTP(tt.code), tt.code)
	}
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Hello", CleanString("  Hello \n"))
	assert.Equal(t, "hello", CleanString("  HeLLo ", true))
}

package user

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/tests"
)

func TestUserValidators(t *testing.T) {
	validate, translator := testutil.NewValidator()
	InitValidators(validate, translator)
	LoadCommonPasswords(testutil.NewLogger())

	newUser := func(pwd string) NewUser {
		return NewUser{
			ID:              "FAC010",
			Name:            "Meera Iyer",
			Email:           "meera@psgitech.ac.in",
			Role:            RoleTeachingStaff,
			Password:        pwd,
			PasswordConfirm: pwd,
		}
	}

	tests := []struct {
		name    string
		nu      NewUser
		wantErr map[string]string
	}{
		{name: "valid", nu: newUser("Xy9!abcd")},
		{name: "min length", nu: newUser("Xy9!abc"), wantErr: map[string]string{"password": pwdMinLenText}},
		{name: "whitespace", nu: newUser("Xy9! abcd"), wantErr: map[string]string{"password": pwdNoSpaceText}},
		{name: "all numeric", nu: newUser("12345678"), wantErr: map[string]string{"password": pwdNotAllNumText}},
		{name: "complexity", nu: newUser("xy9!abcd"), wantErr: map[string]string{"password": pwdComplexityText}},
		{name: "similar to name", nu: newUser("MeeraIyer1!"), wantErr: map[string]string{"password": pwdAttrSimText}},
		{name: "common", nu: newUser("P@ssw0rd"), wantErr: map[string]string{"password": pwdNoCommonText}},
		{
			name: "bad role",
			nu: NewUser{
				ID: "X1", Name: "X", Email: "x@psgitech.ac.in", Role: "admin",
				Password: "Xy9!abcd", PasswordConfirm: "Xy9!abcd",
			},
			wantErr: map[string]string{"role": roleText},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nu.Validate(validate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "got %v", err)

			got := make(map[string]string, len(vErrs))
			for _, vErr := range vErrs {
				got[vErr.Field()] = vErr.Translate(translator)
			}
			assert.Equal(t, tt.wantErr, got)
		})
	}
}

func TestResetPassword_Validate(t *testing.T) {
	validate, translator := testutil.NewValidator()
	InitValidators(validate, translator)

	// confirming a code alone is valid
	rp := ResetPassword{Email: " Meera@psgitech.ac.in", Code: "123456"}
	require.NoError(t, rp.Validate(validate))
	assert.Equal(t, "meera@psgitech.ac.in", rp.Email)

	rp = ResetPassword{Email: "meera@psgitech.ac.in", Code: "123456", Password: "short"}
	assert.Error(t, rp.Validate(validate))

	rp = ResetPassword{Email: "meera@psgitech.ac.in", Code: "123456", Password: "Xy9!abcd", PasswordConfirm: "Xy9!abcd"}
	assert.NoError(t, rp.Validate(validate))
}

func TestPasswordResetRequest_Validate(t *testing.T) {
	validate, translator := testutil.NewValidator()
	InitValidators(validate, translator)

	pr := PasswordResetRequest{Email: "anjali@psgitech.ac.in", Role: RoleStudent}
	err := pr.Validate(validate)
	require.Error(t, err)
	assert.True(t, core.IsValidationError(err))

	pr = PasswordResetRequest{Email: "anjali@psgitech.ac.in", Role: RoleStudent, RollNumber: "7155000123"}
	assert.NoError(t, pr.Validate(validate))

	pr = PasswordResetRequest{Email: "ramesh@psgitech.ac.in", Role: RoleTeachingStaff}
	assert.NoError(t, pr.Validate(validate))
}

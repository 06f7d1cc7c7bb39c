package tests

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jyvarssudha/Smartamenitiescampusapp/apps/api/echo"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	emailsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/email"
)

func createUser(t *testing.T, a *app, rec user.Record) {
	if _, err := a.users.CreateUser(context.Background(), rec); err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
}

func TestHome(t *testing.T) {
	a := setup(t)
	rec := a.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Campus Amenities API!", rec.Body.String())
}

func TestLogin(t *testing.T) {
	a := setup(t)
	createUser(t, a, user.Record{
		ID: "u1", Name: "Asha Raman", Email: "asha@psgitech.ac.in", Role: user.RoleStudent,
		Department: "CSE", RollNumber: "715521104001", Password: "s3cret!pass",
	})

	tests := []httpTest{
		{
			name:     "empty body",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad role",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			body:     []byte(`{"id": "715521104001", "password": "x", "role": "dean"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "roll number outside the campus",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			body:     []byte(`{"id": "9999", "password": "x", "role": "student"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"id": "roll number must start with 7155"}`),
		},
		{
			name:     "wrong password",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			body:     []byte(`{"id": "715521104001", "password": "nope", "role": "student"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: user.ErrAuthenticationFailed.Error()}),
		},
	}
	runHTTPTests(t, a, tests)

	t.Run("stored user", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/v1/auth/login", "", []byte(`{"id": " 715521104001 ", "password": "s3cret!pass", "role": "Student"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp LoginResponse
		unmarchall(t, rec.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, user.User{
			ID: "715521104001", Name: "Asha Raman", Email: "asha@psgitech.ac.in", Role: user.RoleStudent, Department: "CSE",
		}, *resp.User)

		// the token authenticates
		me := a.do(http.MethodGet, "/v1/me", resp.Token)
		assert.Equal(t, http.StatusOK, me.Code)
		ok, err := jsonBytesEqual(t, me.Body.Bytes(), marchallObj(t, resp.User))
		assert.NoError(t, err)
		assert.True(t, ok, me.Body.String())
	})

	t.Run("demo user", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/v1/auth/login", "", []byte(`{"id": "EMP777", "password": "whatever", "role": "teaching-staff"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp LoginResponse
		unmarchall(t, rec.Body.Bytes(), &resp)
		require.NotNil(t, resp.User)
		assert.Equal(t, user.DemoUser("EMP777", user.RoleTeachingStaff), *resp.User)
		assert.True(t, resp.User.Demo)
	})
}

func TestRoles(t *testing.T) {
	a := setup(t)
	runHTTPTests(t, a, []httpTest{
		{
			name:     "unauthenticated",
			path:     "/v1/auth/roles",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, user.Roles),
		},
	})
}

func TestMe(t *testing.T) {
	a := setup(t)
	runHTTPTests(t, a, []httpTest{
		{
			name:     "no token",
			path:     "/v1/me",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "bad token",
			path:     "/v1/me",
			token:    "not.a.token",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "ok",
			path:     "/v1/me",
			token:    getToken(t, faculty),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, faculty),
		},
	})
}

func TestTokenRefresh(t *testing.T) {
	a := setup(t)
	rec := a.do(http.MethodPost, "/v1/auth/token-refresh", getToken(t, student))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	unmarchall(t, rec.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Nil(t, resp.User)

	me := a.do(http.MethodGet, "/v1/me", resp.Token)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestPasswordReset(t *testing.T) {
	a := setup(t)
	createUser(t, a, user.Record{
		ID: "u1", Name: "Dr. Ramesh Kumar", Email: "ramesh@psgitech.ac.in", Role: user.RoleTeachingStaff,
		EmployeeID: "EMP001", Password: "old-password",
	})
	sent := []byte(`{"success": "If the email address supplied is associated with an account on this system, an email will arrive in your inbox shortly with your password reset code."}`)

	runHTTPTests(t, a, []httpTest{
		{
			name:     "email outside the campus",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset",
			body:     []byte(`{"email": "ramesh@gmail.com"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "student without roll number",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset",
			body:     []byte(`{"email": "asha@psgitech.ac.in", "role": "student"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"roll_number": "this field is required"}`),
		},
		{
			name:     "unknown email",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset",
			body:     []byte(`{"email": "nobody@psgitech.ac.in"}`),
			wantCode: http.StatusOK,
			wantData: sent,
		},
	})
	assert.Empty(t, emailsvc.SentMessages())

	rec := a.do(http.MethodPost, "/v1/auth/password-reset", "", []byte(`{"email": "Ramesh@psgitech.ac.in"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	msgs := emailsvc.SentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ramesh@psgitech.ac.in", msgs[0].To[0].Address)
	assert.True(t, strings.Contains(msgs[0].TextContent, otpCode), msgs[0].TextContent)

	runHTTPTests(t, a, []httpTest{
		{
			name:     "malformed code",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset-confirm",
			body:     []byte(`{"email": "ramesh@psgitech.ac.in", "code": "12ab"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrong code",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset-confirm",
			body:     []byte(`{"email": "ramesh@psgitech.ac.in", "code": "000000"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: user.ErrInvalidOTP.Error()}),
		},
		{
			name:     "passwords mismatch",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset-confirm",
			body:     []byte(`{"email": "ramesh@psgitech.ac.in", "code": "` + otpCode + `", "password": "Camp#Reset2025", "password_confirm": "other"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "ok",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset-confirm",
			body:     []byte(`{"email": "ramesh@psgitech.ac.in", "code": "` + otpCode + `", "password": "Camp#Reset2025", "password_confirm": "Camp#Reset2025"}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success": "Password has been reset with the new password."}`),
		},
		{
			name:     "code is single use",
			method:   http.MethodPost,
			path:     "/v1/auth/password-reset-confirm",
			body:     []byte(`{"email": "ramesh@psgitech.ac.in", "code": "` + otpCode + `"}`),
			wantCode: http.StatusBadRequest,
		},
	})

	login := a.do(http.MethodPost, "/v1/auth/login", "", []byte(`{"id": "EMP001", "password": "Camp#Reset2025", "role": "teaching-staff"}`))
	assert.Equal(t, http.StatusOK, login.Code, login.Body.String())
}

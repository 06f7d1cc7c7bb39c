package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// Roles
const (
	RoleStudent          = "student"
	RoleTeachingStaff    = "teaching-staff"
	RoleNonTeachingStaff = "non-teaching-staff"
	RoleMaintenanceHead  = "maintenance-head"
)

var (
	AllRoles = []string{RoleStudent, RoleTeachingStaff, RoleNonTeachingStaff, RoleMaintenanceHead}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Teaching Staff", Value: RoleTeachingStaff},
		{Name: "Non-Teaching Staff", Value: RoleNonTeachingStaff},
		{Name: "Maintenance Head", Value: RoleMaintenanceHead},
	}

	// demo identities, per role
	demoNames = map[string]string{
		RoleStudent:          "Demo Student",
		RoleTeachingStaff:    "Demo Teacher",
		RoleNonTeachingStaff: "Demo Staff",
		RoleMaintenanceHead:  "Demo Maintenance Head",
	}
	demoDepartments = map[string]string{
		RoleStudent:          "Engineering",
		RoleTeachingStaff:    "Computer Science",
		RoleNonTeachingStaff: "Administration",
		RoleMaintenanceHead:  "Facilities",
	}
)

func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is the identity a session acts as.
type User struct {
	ID         string `json:"id"` // roll number for students, employee id otherwise
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Demo       bool   `json:"demo"`
}

// DemoUser fabricates the identity used when no backend record backs a login.
func DemoUser(id, role string) User {
	return User{
		ID:         id,
		Name:       demoNames[role],
		Email:      id + "@campus.edu",
		Role:       role,
		Department: demoDepartments[role],
		Demo:       true,
	}
}

func (u User) IsStudent() bool          { return u.Role == RoleStudent }
func (u User) IsTeachingStaff() bool    { return u.Role == RoleTeachingStaff }
func (u User) IsNonTeachingStaff() bool { return u.Role == RoleNonTeachingStaff }
func (u User) IsMaintenanceHead() bool  { return u.Role == RoleMaintenanceHead }

// RollbarPerson implements the person shape the Rollbar logger reports errors against.
func (u User) RollbarPerson() (id, username, email string) {
	return u.ID, u.Name, u.Email
}

// Record is a user row of the backend.
type Record struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department string
	RollNumber string
	EmployeeID string
	Password   string // plaintext or bcrypt hash, per auth.passwordScheme
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r Record) LoginID() string {
	if r.Role == RoleStudent {
		return r.RollNumber
	}
	return r.EmployeeID
}

func (r Record) User() User {
	return User{
		ID:         r.LoginID(),
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		Department: r.Department,
	}
}

// CheckPassword compares pwd with the stored password using scheme.
func (r Record) CheckPassword(pwd, scheme string) bool {
	if scheme == core.PasswordSchemeBcrypt {
		return bcrypt.CompareHashAndPassword([]byte(r.Password), []byte(pwd)) == nil
	}
	return r.Password == pwd
}

// HashPassword encodes pwd for storage using scheme.
func HashPassword(pwd, scheme string) (string, error) {
	if scheme != core.PasswordSchemeBcrypt {
		return pwd, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// OTP is a password reset code.
type OTP struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

func (o OTP) Valid(now time.Time) bool {
	return !o.Used && now.Before(o.ExpiresAt)
}

// NewUser contains information needed to create a new backend user.
type NewUser struct {
	ID              string `json:"id" validate:"required,notblank"`
	Name            string `json:"name" validate:"required,notblank"`
	Email           string `json:"email" validate:"required,email,campusemail"`
	Role            string `json:"role" validate:"required,role"`
	Department      string `json:"department"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.ID = core.CleanString(nu.ID)
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	nu.Department = core.CleanString(nu.Department)
	return validate.Struct(nu)
}

// PasswordChange sets a new password without an OTP. It is used by the admin CLI.
type PasswordChange struct {
	Email           string `json:"email" validate:"required,campusemail"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (pc *PasswordChange) Validate(validate *validator.Validate) error {
	pc.Email = core.CleanString(pc.Email, true /* lower */)
	return validate.Struct(pc)
}

type LoginRequest struct {
	ID       string `json:"id" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.ID = core.CleanString(lr.ID)
	lr.Role = core.CleanString(lr.Role, true /* lower */)
	return validate.Struct(lr)
}

type PasswordResetRequest struct {
	Email      string `json:"email" validate:"required,campusemail"`
	RollNumber string `json:"roll_number" validate:"omitempty,rollnumber"`
	Role       string `json:"role" validate:"omitempty,role"`
}

func (pr *PasswordResetRequest) Validate(validate *validator.Validate) error {
	pr.Email = core.CleanString(pr.Email, true /* lower */)
	pr.RollNumber = core.CleanString(pr.RollNumber)
	pr.Role = core.CleanString(pr.Role, true /* lower */)
	if err := validate.Struct(pr); err != nil {
		return err
	}
	if pr.Role == RoleStudent && pr.RollNumber == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "roll_number", Error: "this field is required"})
	}
	return nil
}

// ResetPassword confirms an OTP. When Password is set the new password is stored.
type ResetPassword struct {
	Email           string `json:"email" validate:"required,campusemail"`
	Code            string `json:"code" validate:"required,otp"`
	Password        string `json:"password,omitempty"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required_with=Password,eqfield=Password"`
}

func (rp *ResetPassword) Validate(validate *validator.Validate) error {
	rp.Email = core.CleanString(rp.Email, true /* lower */)
	rp.Code = core.CleanString(rp.Code)
	return validate.Struct(rp)
}

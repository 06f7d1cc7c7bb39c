package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"sync"
	"time"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// lookup fields
const (
	FieldRollNumber = "roll_number"
	FieldEmployeeID = "employee_id"
)

const (
	otpMin = 100000
	otpMax = 999999
)

var (
	// errors
	ErrNotFound             = errors.New("user not found")
	ErrInvalidOTP           = errors.New("invalid or expired OTP")
	ErrAuthenticationFailed = errors.New("invalid credentials")
)

type (
	// Backend is the persistence collaborator holding users and password reset codes.
	// Calls return core.ErrBackendUnavailable when it is not configured or not reachable.
	Backend interface {
		FindUser(ctx context.Context, idField, idValue, role string) (Record, error)
		FindUserByEmailAndOptionalRoll(ctx context.Context, email, roll string) (Record, error)
		InsertOTP(ctx context.Context, email, code string, expiresAt time.Time) error
		// FindValidOTP returns the latest unused, unexpired code matching email and code.
		FindValidOTP(ctx context.Context, email, code string, now time.Time) (OTP, error)
		// MarkOTPUsed consumes the code of id. It returns ErrInvalidOTP when the code was already used.
		MarkOTPUsed(ctx context.Context, id int64) error

		CreateUser(ctx context.Context, rec Record) (Record, error)
		UpdatePassword(ctx context.Context, email, password string) error
	}

	Service interface {
		Authenticate(ctx context.Context, id, password, role string) (User, error)
		RequestOTP(ctx context.Context, email, roll string) error
		VerifyOTP(ctx context.Context, email, code string) error
		ResetPassword(ctx context.Context, email, password string) error
		Create(ctx context.Context, nu NewUser) (User, error)
	}

	service struct {
		backend  Backend
		mailSvc  core.EmailService
		conf     *core.Config
		logger   core.Logger
		metrics  core.Metrics
		otps     *otpStore
		codeFunc func() (string, error)
	}
)

var _ Service = (*service)(nil)

func NewService(backend Backend, mailSvc core.EmailService, conf *core.Config, logger core.Logger, metrics core.Metrics) Service {
	return newService(backend, mailSvc, conf, logger, metrics)
}

func newService(backend Backend, mailSvc core.EmailService, conf *core.Config, logger core.Logger, metrics core.Metrics) *service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(backend, "backend"),
		vala.IsNotNil(mailSvc, "mailSvc"),
		vala.IsNotNil(conf, "conf"),
		vala.IsNotNil(logger, "logger"),
		vala.IsNotNil(metrics, "metrics"),
	).CheckAndPanic()

	return &service{
		backend:  backend,
		mailSvc:  mailSvc,
		conf:     conf,
		logger:   logger,
		metrics:  metrics,
		otps:     newOTPStore(),
		codeFunc: generateOTP,
	}
}

// Authenticate checks the credentials of a login attempt.
// When no backend record backs the login and demo fallback is enabled, a demo identity is returned.
func (svc *service) Authenticate(ctx context.Context, id, password, role string) (User, error) {
	id = core.CleanString(id)
	role = core.CleanString(role, true /* lower */)

	if !ValidRole(role) {
		return User{}, core.NewValidationError(nil, core.FieldError{Field: "role", Error: roleText})
	}
	if id == "" {
		return User{}, core.NewValidationError(nil, core.FieldError{Field: "id", Error: "this field is required"})
	}

	idField := FieldEmployeeID
	if role == RoleStudent {
		if !core.ValidRollNumber(id, svc.conf.Auth.RollNumberPrefix) {
			return User{}, core.NewValidationError(nil, core.FieldError{
				Field: "id",
				Error: fmt.Sprintf("roll number must start with %s", svc.conf.Auth.RollNumberPrefix),
			})
		}
		idField = FieldRollNumber
	}

	rec, err := svc.backend.FindUser(ctx, idField, id, role)
	if err == nil {
		if !rec.CheckPassword(password, svc.conf.Auth.PasswordScheme) {
			return User{}, ErrAuthenticationFailed
		}
		return rec.User(), nil
	}

	if !svc.conf.Auth.DemoFallback {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrAuthenticationFailed
		}
		return User{}, errors.Wrap(err, "finding user")
	}
	svc.logger.Warn(fmt.Sprintf("login %s (%s): %v; signing in demo user", id, role, err))
	svc.metrics.DemoFallback("login")
	return DemoUser(id, role), nil
}

// RequestOTP issues a password reset code for email and mails it to the user.
// When the backend cannot store the code, it is kept locally and logged instead (demo mode).
func (svc *service) RequestOTP(ctx context.Context, email, roll string) error {
	email = core.CleanString(email, true /* lower */)
	roll = core.CleanString(roll)

	if !core.ValidCampusEmail(email, svc.conf.Auth.EmailDomain) {
		return core.NewValidationError(nil, core.FieldError{Field: "email", Error: "email must end with " + svc.conf.Auth.EmailDomain})
	}
	if roll != "" && !core.ValidRollNumber(roll, svc.conf.Auth.RollNumberPrefix) {
		return core.NewValidationError(nil, core.FieldError{
			Field: "roll_number",
			Error: fmt.Sprintf("roll number must start with %s", svc.conf.Auth.RollNumberPrefix),
		})
	}

	code, err := svc.codeFunc()
	if err != nil {
		return errors.Wrap(err, "generating OTP")
	}
	expiresAt := core.NowFunc().Add(svc.conf.Auth.OTPTTL)

	rec, err := svc.backend.FindUserByEmailAndOptionalRoll(ctx, email, roll)
	switch {
	case err == nil:
	case core.IsBackendUnavailable(err):
		return svc.demoOTP(email, code, expiresAt, err)
	case errors.Cause(err) == ErrNotFound:
		return core.NewNotFoundError("user", email)
	default:
		return errors.Wrap(err, "finding user")
	}

	if err = svc.backend.InsertOTP(ctx, email, code, expiresAt); err != nil {
		return svc.demoOTP(email, code, expiresAt, err)
	}
	svc.sendOTPMail(rec, code)
	return nil
}

func (svc *service) demoOTP(email, code string, expiresAt time.Time, cause error) error {
	if !svc.conf.Auth.DemoFallback {
		return errors.Wrap(cause, "storing OTP")
	}
	svc.otps.add(OTP{Email: email, Code: code, ExpiresAt: expiresAt, CreatedAt: core.NowFunc()})
	svc.metrics.DemoFallback("request_otp")
	svc.logger.Warn(fmt.Sprintf("demo mode (%v): OTP for %s is %s", cause, email, code))
	return nil
}

func (svc *service) sendOTPMail(rec Record, code string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: rec.Name, Address: rec.Email}},
		Subject:      "Your password reset code",
		TemplateName: "password_reset_otp",
		TemplateData: map[string]interface{}{
			"Name":     rec.Name,
			"Code":     code,
			"ValidFor": svc.conf.Auth.OTPTTL.String(),
		},
	})
}

// VerifyOTP consumes a password reset code. Any unknown, used or expired code is ErrInvalidOTP.
func (svc *service) VerifyOTP(ctx context.Context, email, code string) error {
	email = core.CleanString(email, true /* lower */)
	code = core.CleanString(code)
	if !core.ValidOTP(code) {
		return core.NewValidationError(nil, core.FieldError{Field: "code", Error: "code must be exactly 6 digits"})
	}
	now := core.NowFunc()

	otp, err := svc.backend.FindValidOTP(ctx, email, code, now)
	if err == nil {
		if err = svc.backend.MarkOTPUsed(ctx, otp.ID); err != nil {
			if errors.Cause(err) == ErrInvalidOTP {
				// consumed by a concurrent verification
				return ErrInvalidOTP
			}
			return errors.Wrap(err, "marking OTP used")
		}
		return nil
	}
	if !core.IsBackendUnavailable(err) && errors.Cause(err) != ErrNotFound {
		svc.logger.Error(fmt.Sprintf("finding OTP for %s: %v", email, err), err)
	}

	if svc.otps.consume(email, code, now) {
		return nil
	}
	return ErrInvalidOTP
}

// ResetPassword stores a new password for the user of email. The password policy is applied by the caller.
func (svc *service) ResetPassword(ctx context.Context, email, password string) error {
	hash, err := HashPassword(password, svc.conf.Auth.PasswordScheme)
	if err != nil {
		return errors.Wrap(err, "hashing password")
	}
	if err = svc.backend.UpdatePassword(ctx, core.CleanString(email, true /* lower */), hash); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return core.NewNotFoundError("user", email)
		}
		return err
	}
	return nil
}

func (svc *service) Create(ctx context.Context, nu NewUser) (User, error) {
	hash, err := HashPassword(nu.Password, svc.conf.Auth.PasswordScheme)
	if err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	now := core.NowFunc().UTC()
	rec := Record{
		ID:         nu.ID,
		Name:       nu.Name,
		Email:      nu.Email,
		Role:       nu.Role,
		Department: nu.Department,
		Password:   hash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if nu.Role == RoleStudent {
		rec.RollNumber = nu.ID
	} else {
		rec.EmployeeID = nu.ID
	}
	if rec, err = svc.backend.CreateUser(ctx, rec); err != nil {
		return User{}, err
	}
	return rec.User(), nil
}

// generateOTP draws a 6 digits code uniformly from [otpMin, otpMax].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}

// otpStore keeps the codes issued in demo mode.
type otpStore struct {
	mu    sync.Mutex
	codes []OTP
}

func newOTPStore() *otpStore {
	return &otpStore{}
}

func (s *otpStore) add(otp OTP) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, otp)
}

// consume marks the latest valid matching code used.
func (s *otpStore) consume(email, code string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.codes) - 1; i >= 0; i-- {
		otp := &s.codes[i]
		if otp.Email == email && otp.Code == code && otp.Valid(now) {
			otp.Used = true
			return true
		}
	}
	return false
}

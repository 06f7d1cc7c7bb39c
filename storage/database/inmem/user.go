package inmemdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

// userBackend keeps users and reset codes in memory. It serves tests and local runs without postgres.
type userBackend struct {
	users *Collection[user.Record]

	mutex sync.Mutex
	otps  []user.OTP
	pk    int64
}

var _ user.Backend = (*userBackend)(nil)

func NewUserBackend(db *DB) *userBackend {
	return &userBackend{users: db.users}
}

func (b *userBackend) FindUser(_ context.Context, idField, idValue, role string) (user.Record, error) {
	for _, rec := range b.users.List() {
		if rec.Role != role {
			continue
		}
		switch {
		case idField == user.FieldRollNumber && rec.RollNumber == idValue,
			idField == user.FieldEmployeeID && rec.EmployeeID == idValue:
			return rec, nil
		}
	}
	return user.Record{}, user.ErrNotFound
}

func (b *userBackend) FindUserByEmailAndOptionalRoll(_ context.Context, email, roll string) (user.Record, error) {
	for _, rec := range b.users.List() {
		if rec.Email == email && (roll == "" || rec.RollNumber == roll) {
			return rec, nil
		}
	}
	return user.Record{}, user.ErrNotFound
}

func (b *userBackend) InsertOTP(_ context.Context, email, code string, expiresAt time.Time) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.pk++
	b.otps = append(b.otps, user.OTP{
		ID:        b.pk,
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: core.NowFunc(),
	})
	return nil
}

func (b *userBackend) FindValidOTP(_ context.Context, email, code string, now time.Time) (user.OTP, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	// latest first
	for i := len(b.otps) - 1; i >= 0; i-- {
		otp := b.otps[i]
		if otp.Email == email && otp.Code == code && otp.Valid(now) {
			return otp, nil
		}
	}
	return user.OTP{}, user.ErrNotFound
}

func (b *userBackend) MarkOTPUsed(_ context.Context, id int64) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for i := range b.otps {
		if b.otps[i].ID == id {
			if b.otps[i].Used {
				return user.ErrInvalidOTP
			}
			b.otps[i].Used = true
			return nil
		}
	}
	return user.ErrNotFound
}

func (b *userBackend) CreateUser(_ context.Context, rec user.Record) (user.Record, error) {
	for _, other := range b.users.List() {
		if other.Email == rec.Email {
			return user.Record{}, fmt.Errorf("email %q already registered", rec.Email)
		}
	}
	now := core.NowFunc()
	rec.CreatedAt, rec.UpdatedAt = now, now
	return b.users.Create(rec)
}

func (b *userBackend) UpdatePassword(_ context.Context, email, password string) error {
	for _, rec := range b.users.List() {
		if rec.Email != email {
			continue
		}
		_, err := b.users.Update(rec.ID, func(r *user.Record) error {
			r.Password = password
			r.UpdatedAt = core.NowFunc()
			return nil
		})
		return err
	}
	return user.ErrNotFound
}

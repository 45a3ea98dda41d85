package models

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// Password holds a bcrypt hash. The hash never leaves the type except
// through driver.Valuer on its way into storage.
type Password struct {
	hash []byte
}

func NewPassword(plain string) (Password, error) {
	if len(plain) > 72 {
		return Password{}, ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, fmt.Errorf("hash password: %w", err)
	}
	return Password{hash: hash}, nil
}

func (p Password) IsSet() bool { return len(p.hash) > 0 }

func (p Password) Matches(plain string) bool {
	if !p.IsSet() {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(plain)) == nil
}

func (p Password) String() string { return "[redacted]" }

func (p Password) GoString() string { return "models.Password{[redacted]}" }

func (p Password) Value() (driver.Value, error) {
	if !p.IsSet() {
		return nil, nil
	}
	return string(p.hash), nil
}

func (p *Password) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		p.hash = nil
	case string:
		p.hash = []byte(v)
	case []byte:
		p.hash = append([]byte(nil), v...)
	default:
		return fmt.Errorf("scan password: unsupported type %T", src)
	}
	return nil
}

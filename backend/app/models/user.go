package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint     `gorm:"primaryKey"`
	Username  string   `gorm:"uniqueIndex;size:191;not null"`
	Password  Password `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	ImageURL  *string  `gorm:"size:1024"`
	Bio       *string  `gorm:"type:text"`
	Recipes   []Recipe `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Validate() []string {
	var msgs []string
	if strings.TrimSpace(u.Username) == "" {
		msgs = append(msgs, MsgUsernameRequired)
	}
	if !u.Password.IsSet() {
		msgs = append(msgs, MsgPasswordRequired)
	}
	return msgs
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if msgs := u.Validate(); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

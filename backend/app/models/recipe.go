package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinInstructionsLength is counted in characters after trimming surrounding whitespace.
const MinInstructionsLength = 50

type Recipe struct {
	ID                uint   `gorm:"primaryKey"`
	Title             string `gorm:"size:255;not null"`
	Instructions      string `gorm:"type:text;not null"`
	MinutesToComplete *int
	UserID            *uint `gorm:"index"`
	User              *User
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *Recipe) Validate() []string {
	var msgs []string
	if strings.TrimSpace(r.Title) == "" {
		msgs = append(msgs, MsgTitleRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Instructions)) < MinInstructionsLength {
		msgs = append(msgs, MsgInstructionsTooShort)
	}
	return msgs
}

func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	if msgs := r.Validate(); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

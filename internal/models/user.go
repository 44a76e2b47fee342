package models

import (
	"html"
	"strings"
)

// User matches the user table.
// Columns: id, email (NOT NULL UNIQUE), password (NOT NULL), is_active (NOT NULL)
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:120;not null;unique" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func (User) TableName() string {
	return "user"
}

func (u *User) Prepare() {
	u.Email = html.EscapeString(strings.TrimSpace(u.Email))
}

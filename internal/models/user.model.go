package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	// PasswordHashCost is the fixed bcrypt cost used for all password hashes.
	PasswordHashCost = 10
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"                   json:"id"`
	Email        string    `gorm:"type:text;uniqueIndex;not null"         json:"email"`
	PasswordHash string    `gorm:"type:text;not null"                     json:"-"`
	FullName     string    `gorm:"type:text"                              json:"fullName"`
	Phone        string    `gorm:"type:text"                              json:"phone"`
	Address      string    `gorm:"type:text"                              json:"address"`
	Role         string    `gorm:"type:text;not null;default:'customer'"  json:"role"`
	IsActive     bool      `gorm:"type:bool;not null;default:true"        json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime"                         json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"                         json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		u.ID = id
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

// SetPassword hashes the plaintext password into PasswordHash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches PasswordHash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

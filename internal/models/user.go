package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User is an identity that can own a budget and collaborate on others.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

var ErrEmailAlreadyRegistered = errors.New("this email address is already registered")

// BeforeSave normalizes the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// RegisterUser creates the user together with their default budget.
//
// Every new user gets exactly one budget. Both rows are created in a single
// database transaction so that a failed budget creation does not leave a
// user without a budget behind.
func RegisterUser(db *gorm.DB, email, passwordHash string) (User, error) {
	user := User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		return tx.Create(&Budget{OwnerID: user.ID}).Error
	})
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// FindUserByEmail resolves an email address to the user it belongs to.
func FindUserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	return user, err
}

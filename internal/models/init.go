package models

import (
	"errors"
	"strings"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDemoUser 确保演示账号存在，返回其用户ID
func EnsureDemoUser(db *gorm.DB, username, password string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = "demo"
	}

	var existing User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if password == "" {
		password = "demo123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         constants.UserRoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		return 0, err
	}
	if password == "demo123" {
		logger.Warnw("demo_user_created_with_default_password", "username", username)
	} else {
		logger.Infow("demo_user_created", "username", username, "user_id", user.ID)
	}
	return user.ID, nil
}

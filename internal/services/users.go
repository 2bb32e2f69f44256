package services

import (
	"encoding/hex"
	"errors"

	"todo-service/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	Register(db *gorm.DB, username string) (*models.User, error)
	FindByAPIKey(db *gorm.DB, key string) (*models.User, error)
}

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

// Register creates an account for username and mints its API key.
// Registering a name that already exists returns the existing account
// unchanged, so clients can retry safely.
func (s *UserServiceImpl) Register(db *gorm.DB, username string) (*models.User, error) {
	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, APIKey: key}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserServiceImpl) FindByAPIKey(db *gorm.DB, key string) (*models.User, error) {
	var user models.User
	if err := db.Where("api_key = ?", key).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GenerateAPIKey returns 32 lowercase hex characters of UUIDv4 material,
// a 128-bit opaque bearer token. The unique index on users.api_key backs
// the uniqueness invariant.
func GenerateAPIKey() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(id.Bytes()), nil
}

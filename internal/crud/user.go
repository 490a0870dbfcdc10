// Package crud is the domain operations layer: every function is a single
// create/read/delete against the given gorm handle, with no business rules
// beyond the filters shown. Authorization lives with the handlers.
package crud

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type CreateUserParams struct {
	Email       string
	Password    string
	FullName    string
	IsSuperuser bool
}

func CreateUser(db *gorm.DB, params CreateUserParams) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          params.Email,
		HashedPassword: string(hash),
		FullName:       params.FullName,
		IsActive:       true,
		IsSuperuser:    params.IsSuperuser,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves the email and checks the password, returning
// ErrInvalidCredentials for both an unknown email and a bad password so
// callers cannot tell the two apart.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateUser applies a column map built by the handler. A "password" key is
// rehashed into hashed_password before the update runs.
func UpdateUser(db *gorm.DB, user *models.User, updates map[string]interface{}) error {
	if password, ok := updates["password"]; ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(password.(string)), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		delete(updates, "password")
		updates["hashed_password"] = string(hash)
	}

	if err := db.Model(user).Updates(updates).Error; err != nil {
		return err
	}

	return db.First(user, "id = ?", user.ID).Error
}

func VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil
}

package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// UserService provides methods to interact with stored users
type UserService interface {
	// CreateUser inserts the user unless one with the same email exists. The insert-if-absent is a
	// single statement against the unique email index, so concurrent calls create at most one record.
	CreateUser(ctx context.Context, user *models.User) (created bool, err error)
	// FindUserByEmail returns the user with email; found is false when there is none
	FindUserByEmail(ctx context.Context, email string) (user *models.User, found bool, err error)
	// ListUsers returns every stored user
	ListUsers(ctx context.Context) ([]models.User, error)
	// SetRole changes the role of the user with id
	SetRole(ctx context.Context, id uint, role string) error
	// SetRoleByEmail changes the role of the user with email
	SetRoleByEmail(ctx context.Context, email, role string) error
	// DeleteUser removes the user with id
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) (bool, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(user)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *userService) FindUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &user, true, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) SetRole(ctx context.Context, id uint, role string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) SetRoleByEmail(ctx context.Context, email, role string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

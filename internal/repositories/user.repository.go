package repositories

import (
	"context"

	"petcare/internal/database"
	"petcare/internal/logger"
	. "petcare/internal/models"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAdmin(ctx context.Context) (*User, error)
	Create(ctx context.Context, user *User) error
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	log := r.log.Function("GetByEmail")

	var user User
	if err := r.db.SQLWithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, log.Err("failed to get user by email", err, "email", email)
	}

	return &user, nil
}

// GetAdmin returns the first user with the admin role, or
// gorm.ErrRecordNotFound when none exists.
func (r *userRepository) GetAdmin(ctx context.Context) (*User, error) {
	var user User
	if err := r.db.SQLWithContext(ctx).First(&user, "role = ?", RoleAdmin).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(user).Error; err != nil {
		return log.Err("failed to create user", err, "email", user.Email)
	}

	return nil
}

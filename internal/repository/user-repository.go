package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/helper"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByUniqueID(uniqueID string) (*domain.User, error)
	SaveUser(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, domain.ErrDuplicateUser
		}
		log.Printf("create user error: %v", err)
		return nil, errors.New("failed to create user")
	}

	return user, nil
}

func (r *userRepository) FindUserByUniqueID(uniqueID string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "unique_id = ?", uniqueID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find user by unique id error: %v", err)
		}
		return nil, fmt.Errorf("find user %q: %w", uniqueID, err)
	}

	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return errors.New("failed to save user")
	}
	return nil
}

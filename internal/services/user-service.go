package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/internal/helper"
	"github.com/Gayatri-ch/UniPay/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserService interface {
	// Auth
	Signup(input dto.UserSignup) (*domain.User, error)
	Login(input dto.UserLogin) (*dto.LoginResponse, error)
	Logout(uniqueID string)

	// PIN
	SetPIN(uniqueID, pin string) error
	VerifyPIN(s *Session, pin string) (decimal.Decimal, error)
}

const (
	maxPinAttempts = 3
	pinLockout     = 5 * time.Minute
)

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	sessions *SessionManager
	now      func() time.Time
}

func NewUserService(repo repository.UserRepository, auth helper.Auth, sessions *SessionManager) UserService {
	return &userService{
		repo:     repo,
		auth:     auth,
		sessions: sessions,
		now:      time.Now,
	}
}

func (u *userService) Signup(input dto.UserSignup) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	uniqueID := strings.TrimSpace(input.UniqueID)

	if name == "" || phone == "" {
		return nil, domain.ErrInvalidSignup
	}
	if !helper.StrongPassword(input.Password) {
		return nil, domain.ErrWeakPassword
	}
	if uniqueID == "" {
		uniqueID = uuid.NewString()
	}

	hashed, err := helper.HashSecret(input.Password)
	if err != nil {
		return nil, err
	}

	return u.repo.CreateUser(&domain.User{
		UniqueID:     uniqueID,
		Name:         name,
		Phone:        phone,
		PasswordHash: hashed,
	})
}

func (u *userService) Login(input dto.UserLogin) (*dto.LoginResponse, error) {
	user, err := u.findUser(input.UniqueID)
	if err != nil {
		return nil, err
	}
	if err := u.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return nil, err
	}

	token, err := u.auth.GenerateToken(user.UniqueID)
	if err != nil {
		return nil, err
	}
	if _, err := u.sessions.Start(user.UniqueID); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    token,
		UniqueID: user.UniqueID,
		Name:     user.Name,
	}, nil
}

func (u *userService) Logout(uniqueID string) {
	u.sessions.End(uniqueID)
}

func (u *userService) SetPIN(uniqueID, pin string) error {
	if !helper.ValidPin(pin) {
		return domain.ErrInvalidPin
	}
	user, err := u.findUser(uniqueID)
	if err != nil {
		return err
	}

	hashed, err := helper.HashSecret(pin)
	if err != nil {
		return err
	}
	user.PinHash = hashed
	return u.repo.SaveUser(user)
}

// VerifyPIN checks pin for the session's user and returns the wallet
// balance. Three wrong pins lock the session's PIN checks for five minutes.
func (u *userService) VerifyPIN(s *Session, pin string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := u.now()
	if !s.pinLockedUntil.IsZero() {
		if now.Before(s.pinLockedUntil) {
			return decimal.Zero, domain.ErrPinLocked
		}
		s.pinLockedUntil = time.Time{}
		s.pinAttempts = 0
	}

	if !helper.ValidPin(pin) {
		return decimal.Zero, domain.ErrInvalidPin
	}
	user, err := u.findUser(s.UniqueID)
	if err != nil {
		return decimal.Zero, err
	}
	if user.PinHash == "" {
		return decimal.Zero, domain.ErrPinNotSet
	}

	if err := u.auth.VerifyPassword(pin, user.PinHash); err != nil {
		s.pinAttempts++
		if s.pinAttempts >= maxPinAttempts {
			s.pinLockedUntil = now.Add(pinLockout)
			return decimal.Zero, domain.ErrPinLocked
		}
		return decimal.Zero, domain.ErrIncorrectPin
	}

	s.pinAttempts = 0
	return s.ledger.Balance(), nil
}

// findUser maps a missing user to ErrInvalidCredentials.
func (u *userService) findUser(uniqueID string) (*domain.User, error) {
	uniqueID = strings.TrimSpace(uniqueID)
	if uniqueID == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := u.repo.FindUserByUniqueID(uniqueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

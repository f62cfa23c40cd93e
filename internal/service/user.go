package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"vaani_web/internal/common"
	"vaani_web/internal/metrics"
	"vaani_web/internal/models"
	"vaani_web/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	policy   PasswordPolicy
	metrics  *metrics.Metrics
}

func NewUserService(userRepo repository.UserRepository, policy PasswordPolicy, m *metrics.Metrics) *UserService {
	return &UserService{userRepo: userRepo, policy: policy, metrics: m}
}

// RegisterInput carries the registration form fields. The demographic
// fields are optional.
type RegisterInput struct {
	Username        string
	FullName        string
	Password        string
	ConfirmPassword string

	Gender       string
	Organization string
	Village      string
	Town         string
	District     string
	State        string
	DateOfBirth  string
}

// Register validates the input, hashes the password, and persists a new
// contributor with a fresh opaque user ID.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.FullName == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, common.ErrMissingInput
	}
	if in.Password != in.ConfirmPassword {
		return nil, common.ErrPasswordMismatch
	}
	if err := s.policy.Validate(in.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Password:     string(hashed),
		UserID:       common.NewShortID(),
		Gender:       in.Gender,
		Organization: in.Organization,
		Village:      in.Village,
		Town:         in.Town,
		District:     in.District,
		State:        in.State,
		DateOfBirth:  in.DateOfBirth,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.metrics.RegistrationsTotal.Inc()
	return user, nil
}

// Authenticate verifies username and password. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrMissingInput
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.metrics.LoginFailures.Inc()
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.metrics.LoginFailures.Inc()
		return nil, common.ErrInvalidCredentials
	}

	s.metrics.LoginsTotal.Inc()
	return user, nil
}

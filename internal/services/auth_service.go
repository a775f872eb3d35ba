package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/obratrack/project-tracking-api/internal/constants"
	"github.com/obratrack/project-tracking-api/internal/models"
	"github.com/obratrack/project-tracking-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	profileRepo repository.ProfileRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(profileRepo repository.ProfileRepository) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
	}
}

// SignupInput represents the required information to create a new profile.
type SignupInput struct {
	Email    string
	Password string
}

// Signup creates a new profile. Organization memberships are provisioned
// separately, so a fresh account cannot create projects yet.
func (s *AuthService) Signup(input SignupInput) (*models.Profile, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.profileRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated profile.
func (s *AuthService) Login(input LoginInput) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByEmail(strings.TrimSpace(strings.ToLower(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return profile, nil
}

// GetProfile retrieves a profile by ID.
func (s *AuthService) GetProfile(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return profile, nil
}

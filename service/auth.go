package service

import (
	"fmt"

	"food-ordering-api/apperrors"
	"food-ordering-api/identity"
	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of persistence registration and login need.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// AuthService handles registration and login and mints credentials.
type AuthService struct {
	store  UserStore
	issuer identity.Issuer
}

func NewAuthService(store UserStore, issuer identity.Issuer) *AuthService {
	return &AuthService{store: store, issuer: issuer}
}

// RegisterInput is the closed set of fields a registration may carry.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Country  models.Country
}

// Register creates a user and returns the user plus a signed credential.
// Role and country must come from their closed enums; anything else is
// a validation failure. A duplicate email is a Conflict.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	if !in.Role.Valid() {
		return nil, "", fmt.Errorf("%w: role must be ADMIN, MANAGER or MEMBER", apperrors.ErrValidation)
	}
	if !in.Country.Valid() {
		return nil, "", fmt.Errorf("%w: country must be INDIA or AMERICA", apperrors.ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Country:      in.Country,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.issuer.IssueCredential(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the password and returns the user plus a signed
// credential. Bad email and bad password are deliberately the same error.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthenticated)
	}

	token, err := s.issuer.IssueCredential(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the stored user for an authenticated actor.
func (s *AuthService) Profile(actor identity.Identity) (*models.User, error) {
	return s.store.GetUserByID(actor.ID)
}

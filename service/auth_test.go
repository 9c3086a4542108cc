package service

import (
	"errors"
	"testing"
	"time"

	"food-ordering-api/apperrors"
	"food-ordering-api/identity"
	"food-ordering-api/models"
)

func newAuthService(f *fixtures) (*AuthService, *identity.JWT) {
	tokens := identity.NewJWT([]byte("test-secret"), time.Hour)
	return NewAuthService(f.repo, tokens), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixtures(t)
	svc, tokens := newAuthService(f)

	user, token, err := svc.Register(RegisterInput{
		Name:     "Maria Hill",
		Email:    "maria.hill@shield.com",
		Password: "password123",
		Role:     models.RoleMember,
		Country:  models.CountryAmerica,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in clear")
	}

	actor, err := tokens.VerifyCredential(token)
	if err != nil {
		t.Fatalf("VerifyCredential: %v", err)
	}
	if actor.ID != user.ID || actor.Role != models.RoleMember || actor.Country != models.CountryAmerica {
		t.Fatalf("token identity = %+v, want the registered user", actor)
	}

	if _, _, err := svc.Login("maria.hill@shield.com", "password123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, _, err := svc.Login("maria.hill@shield.com", "wrong"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("bad password: err = %v, want ErrUnauthenticated", err)
	}
	if _, _, err := svc.Login("nobody@shield.com", "password123"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("unknown email: err = %v, want ErrUnauthenticated", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixtures(t)
	svc, _ := newAuthService(f)

	base := RegisterInput{
		Name:     "Test",
		Email:    "test@shield.com",
		Password: "password123",
		Role:     models.RoleMember,
		Country:  models.CountryIndia,
	}

	badRole := base
	badRole.Role = "SUPERVISOR"
	if _, _, err := svc.Register(badRole); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("bad role: err = %v, want ErrValidation", err)
	}

	badCountry := base
	badCountry.Country = "FRANCE"
	if _, _, err := svc.Register(badCountry); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("bad country: err = %v, want ErrValidation", err)
	}

	shortPassword := base
	shortPassword.Password = "abc"
	if _, _, err := svc.Register(shortPassword); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("short password: err = %v, want ErrValidation", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixtures(t)
	svc, _ := newAuthService(f)

	in := RegisterInput{
		Name:     "Test",
		Email:    "dup@shield.com",
		Password: "password123",
		Role:     models.RoleMember,
		Country:  models.CountryIndia,
	}
	if _, _, err := svc.Register(in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(in); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("duplicate email: err = %v, want ErrConflict", err)
	}
}

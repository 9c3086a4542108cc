package identity

import (
	"errors"
	"testing"
	"time"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	j := NewJWT([]byte("test-secret"), time.Hour)

	user := &models.User{
		ID:      "u-1",
		Name:    "Captain Marvel",
		Email:   "captain.marvel@shield.com",
		Role:    models.RoleManager,
		Country: models.CountryIndia,
	}

	token, err := j.IssueCredential(user)
	if err != nil {
		t.Fatalf("IssueCredential: %v", err)
	}

	actor, err := j.VerifyCredential(token)
	if err != nil {
		t.Fatalf("VerifyCredential: %v", err)
	}
	if actor.ID != user.ID || actor.Role != user.Role || actor.Country != user.Country {
		t.Fatalf("identity = %+v, want id/role/country of %+v", actor, user)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	j := NewJWT([]byte("test-secret"), time.Hour)
	if _, err := j.VerifyCredential("not-a-token"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWT([]byte("secret-a"), time.Hour)
	verifier := NewJWT([]byte("secret-b"), time.Hour)

	user := &models.User{ID: "u-1", Role: models.RoleMember, Country: models.CountryAmerica}
	token, err := issuer.IssueCredential(user)
	if err != nil {
		t.Fatalf("IssueCredential: %v", err)
	}
	if _, err := verifier.VerifyCredential(token); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	j := NewJWT([]byte("test-secret"), -time.Minute)

	user := &models.User{ID: "u-1", Role: models.RoleMember, Country: models.CountryAmerica}
	token, err := j.IssueCredential(user)
	if err != nil {
		t.Fatalf("IssueCredential: %v", err)
	}
	if _, err := j.VerifyCredential(token); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

package statemachine

import (
	"errors"
	"testing"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.StatusCreated, models.StatusPlaced, true},
		{models.StatusCreated, models.StatusCancelled, true},
		{models.StatusPlaced, models.StatusCancelled, false},
		{models.StatusPlaced, models.StatusCreated, false},
		{models.StatusCancelled, models.StatusPlaced, false},
		{models.StatusCancelled, models.StatusCreated, false},
		{models.StatusCreated, models.StatusCreated, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.ok && err != nil {
			t.Errorf("CanTransition(%s, %s) = %v, want nil", tt.from, tt.to, err)
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("CanTransition(%s, %s) = nil, want error", tt.from, tt.to)
			} else if !errors.Is(err, apperrors.ErrInvalidState) {
				t.Errorf("CanTransition(%s, %s) = %v, want ErrInvalidState", tt.from, tt.to, err)
			}
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if IsTerminal(models.StatusCreated) {
		t.Error("CREATED must not be terminal")
	}
	if !IsTerminal(models.StatusPlaced) {
		t.Error("PLACED must be terminal")
	}
	if !IsTerminal(models.StatusCancelled) {
		t.Error("CANCELLED must be terminal")
	}
}

package service

import (
	"fmt"

	"food-ordering-api/apperrors"
	"food-ordering-api/identity"
	"food-ordering-api/models"
	"food-ordering-api/policy"
)

// PaymentStore is the slice of persistence payment access needs.
type PaymentStore interface {
	GetPaymentMethod(id string) (*models.PaymentMethod, error)
	UpdatePaymentMethod(id, methodType, last4 string) (*models.PaymentMethod, error)
	ListPaymentMethods(userID string) ([]models.PaymentMethod, error)
}

// PaymentService gates payment method mutation behind ownership-or-admin.
type PaymentService struct {
	store PaymentStore
}

func NewPaymentService(store PaymentStore) *PaymentService {
	return &PaymentService{store: store}
}

// Update applies new type/last4 to a payment method the actor owns, or
// to any payment method if the actor is ADMIN. The owner never changes.
func (s *PaymentService) Update(id, methodType, last4 string, actor identity.Identity) (*models.PaymentMethod, error) {
	pm, err := s.store.GetPaymentMethod(id)
	if err != nil {
		return nil, err
	}

	res := policy.Resource{OwnerID: pm.UserID}
	if d := policy.Decide(actor, policy.ActionUpdatePayment, res); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, d.Reason)
	}

	return s.store.UpdatePaymentMethod(pm.ID, methodType, last4)
}

// ListForActor returns the actor's own payment methods.
func (s *PaymentService) ListForActor(actor identity.Identity) ([]models.PaymentMethod, error) {
	return s.store.ListPaymentMethods(actor.ID)
}

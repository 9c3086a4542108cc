// Package policy is the single place authorization decisions are made.
// Decide is a pure function over the actor, the action, and the scope of
// the target resource; it touches no store and keeps no state, so it is
// safe to call concurrently from any number of operations.
package policy

import (
	"food-ordering-api/identity"
	"food-ordering-api/models"
)

// Action identifies a mutation or scoped read subject to authorization.
type Action string

const (
	ActionListRestaurants Action = "catalog.list"
	ActionViewMenu        Action = "catalog.view_menu"
	ActionCreateOrder     Action = "order.create"
	ActionAddOrderItem    Action = "order.add_item"
	ActionCheckoutOrder   Action = "order.checkout"
	ActionCancelOrder     Action = "order.cancel"
	ActionUpdatePayment   Action = "payment.update"
)

// Resource carries the scope of the target the actor is acting on.
// Country is the country scoping the resource itself (a restaurant's
// country, an order's snapshotted country, and so on). ItemCountry is
// only set for order.add_item and holds the candidate menu item's
// restaurant country, which must match the order's.
type Resource struct {
	OwnerID     string
	Country     models.Country
	ItemCountry models.Country
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// rule is one row of the policy table: which roles may attempt the
// action, and an optional predicate over actor and resource scope.
type rule struct {
	roles []models.Role // empty means any authenticated role
	check func(actor identity.Identity, res Resource) Decision
}

func ownerOnly(actor identity.Identity, res Resource) Decision {
	if actor.ID != res.OwnerID {
		return deny("access denied")
	}
	return allow()
}

func sameCountry(actor identity.Identity, res Resource) Decision {
	if actor.Country != res.Country {
		return deny("resource is outside your country")
	}
	return allow()
}

func ownerAndItemCountry(actor identity.Identity, res Resource) Decision {
	if d := ownerOnly(actor, res); !d.Allowed {
		return d
	}
	if res.ItemCountry != res.Country {
		return deny("cannot add items from a different country")
	}
	return allow()
}

// rules is the authoritative policy table. ADMIN is not listed anywhere
// because Decide short-circuits it before the table is consulted.
var rules = map[Action]rule{
	ActionListRestaurants: {check: sameCountry},
	ActionViewMenu:        {check: sameCountry},
	ActionCreateOrder:     {},
	ActionAddOrderItem:    {check: ownerAndItemCountry},
	ActionCheckoutOrder:   {roles: []models.Role{models.RoleManager}, check: ownerOnly},
	ActionCancelOrder:     {roles: []models.Role{models.RoleManager}, check: ownerOnly},
	ActionUpdatePayment:   {check: ownerOnly},
}

// Decide evaluates the policy table for one actor, action, and resource
// scope. Evaluation is first-match-wins: ADMIN allows everything, then
// the role gate, then the rule's predicate.
func Decide(actor identity.Identity, action Action, res Resource) Decision {
	if actor.Role == models.RoleAdmin {
		return allow()
	}

	r, ok := rules[action]
	if !ok {
		return deny("unknown action")
	}
	if len(r.roles) > 0 {
		permitted := false
		for _, role := range r.roles {
			if actor.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			return deny("insufficient permissions")
		}
	}
	if r.check != nil {
		return r.check(actor, res)
	}
	return allow()
}

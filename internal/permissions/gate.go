package permissions

import (
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
)

// Action identifies what a request wants to do with a resource.
type Action string

const (
	ActionList          Action = "list"
	ActionRetrieve      Action = "retrieve"
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
)

// Principal is the authenticated user behind a request.
type Principal struct {
	UserID  uint
	IsStaff bool
}

// Mutating reports whether the action writes resource state.
func (a Action) Mutating() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy:
		return true
	}
	return false
}

// Check applies the single authorization rule shared by every resource:
// reads need any authenticated principal, writes need the staff flag.
// There is deliberately no per-owner check on update/destroy; staff users
// may mutate rows created by other users.
func Check(action Action, principal *Principal) error {
	if principal == nil || principal.UserID == 0 {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if action.Mutating() && !principal.IsStaff {
		return pkgerrors.New(pkgerrors.CodeForbidden, "staff privilege required")
	}
	return nil
}

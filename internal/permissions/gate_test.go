package permissions

import (
	"testing"

	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
)

func TestCheckDeniesAnonymous(t *testing.T) {
	for _, action := range []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy} {
		err := Check(action, nil)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("action %s: expected unauthorized for anonymous, got %v", action, err)
		}
	}
}

func TestCheckRequiresStaffForMutations(t *testing.T) {
	reader := &Principal{UserID: 1}

	for _, action := range []Action{ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy} {
		err := Check(action, reader)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
			t.Fatalf("action %s: expected forbidden for non-staff, got %v", action, err)
		}
	}

	for _, action := range []Action{ActionList, ActionRetrieve} {
		if err := Check(action, reader); err != nil {
			t.Fatalf("action %s: reads should be allowed for any principal, got %v", action, err)
		}
	}
}

func TestCheckAllowsStaffEverything(t *testing.T) {
	staff := &Principal{UserID: 2, IsStaff: true}
	for _, action := range []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy} {
		if err := Check(action, staff); err != nil {
			t.Fatalf("action %s: staff should be allowed, got %v", action, err)
		}
	}
}

func TestMutating(t *testing.T) {
	if ActionList.Mutating() || ActionRetrieve.Mutating() {
		t.Fatalf("reads must not be mutating")
	}
	if !ActionCreate.Mutating() || !ActionDestroy.Mutating() {
		t.Fatalf("writes must be mutating")
	}
}

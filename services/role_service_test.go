package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hotel-reservations/models"
)

func TestRoleManagement(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	roles := NewRoleService(db)
	accounts := NewAccountService(db, "secret", time.Hour, bcrypt.MinCost)
	ctx := context.Background()
	root := Identity{AccountID: 1, IsSuperuser: true}

	role := &models.Role{Name: "housekeeping"}
	mustCreate(t, db, role)
	clerk := seedAccount(t, db, "clerk")

	if _, err := roles.List(ctx, staffWith(models.PermViewRoom)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	err := roles.SetPermissions(ctx, root, role.ID, []string{"view_room", "launch_rockets"})
	verr := asValidation(t, err)
	if len(verr.Fields["permissions"]) == 0 {
		t.Fatalf("fields = %v, want permissions error", verr.Fields)
	}

	if err := roles.SetPermissions(ctx, root, role.ID, []string{"view_room", "view_room", "view_guest"}); err != nil {
		t.Fatalf("SetPermissions: %v", err)
	}
	if err := roles.AddMember(ctx, root, role.ID, clerk.ID); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if err := roles.AddMember(ctx, root, role.ID, clerk.ID); err != nil {
		t.Fatalf("AddMember twice: %v", err)
	}
	if err := roles.AddMember(ctx, root, 999, clerk.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown role err = %v, want ErrNotFound", err)
	}

	id, err := accounts.LoadIdentity(ctx, clerk.ID)
	if err != nil {
		t.Fatalf("LoadIdentity: %v", err)
	}
	if !id.Has("view_room") || !id.Has("view_guest") || id.Has("add_room") {
		t.Fatalf("permissions = %v", id.Permissions)
	}

	views, err := roles.List(ctx, root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 || len(views[0].MemberIDs) != 1 || !views[0].Permissions["view_guest"] || views[0].Permissions["add_room"] {
		t.Fatalf("views = %+v", views)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"hotel-reservations/models"
)

func guestInput(email, phone string) GuestInput {
	return GuestInput{FirstName: "Grace", LastName: "Hopper", Email: email, PhoneNumber: phone}
}

func TestCreateOwnProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewGuestService(db)
	ctx := context.Background()

	account := seedAccount(t, db, "grace")
	id := Identity{AccountID: account.ID, Username: "grace"}

	if _, err := svc.ForAccount(ctx, account.ID); !errors.Is(err, ErrGuestProfileRequired) {
		t.Fatalf("err = %v, want ErrGuestProfileRequired", err)
	}

	g, err := svc.CreateOwnProfile(ctx, id, guestInput("grace@example.com", "5551234"))
	if err != nil {
		t.Fatalf("CreateOwnProfile: %v", err)
	}
	if g.AccountID == nil || *g.AccountID != account.ID {
		t.Fatalf("account_id = %v, want %d", g.AccountID, account.ID)
	}

	_, err = svc.CreateOwnProfile(ctx, id, guestInput("other@example.com", "5559999"))
	verr := asValidation(t, err)
	if !verr.Conflict || len(verr.Fields["account_id"]) == 0 {
		t.Fatalf("fields = %v, want account_id conflict", verr.Fields)
	}
}

func TestCreateGuestByStaff(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewGuestService(db)
	ctx := context.Background()

	if _, err := svc.Create(ctx, staffWith(models.PermViewGuest), guestInput("a@example.com", "1")); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if n := count(t, db, &models.Guest{}); n != 0 {
		t.Fatalf("guests = %d, want 0", n)
	}

	staff := staffWith(models.PermAddGuest, models.PermViewGuest)
	walkIn, err := svc.Create(ctx, staff, guestInput("a@example.com", "1"))
	if err != nil {
		t.Fatalf("Create walk-in: %v", err)
	}
	if walkIn.AccountID != nil {
		t.Fatalf("account_id = %v, want nil", *walkIn.AccountID)
	}

	missing := uint(404)
	in := guestInput("b@example.com", "2")
	in.AccountID = &missing
	_, err = svc.Create(ctx, staff, in)
	verr := asValidation(t, err)
	if len(verr.Fields["account_id"]) == 0 {
		t.Fatalf("fields = %v, want account_id error", verr.Fields)
	}

	_, err = svc.Create(ctx, staff, guestInput("a@example.com", "1"))
	verr = asValidation(t, err)
	if len(verr.Fields["email"]) == 0 || len(verr.Fields["phone_number"]) == 0 {
		t.Fatalf("fields = %v, want email and phone_number errors", verr.Fields)
	}

	list, err := svc.List(ctx, staff)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}

	got, err := svc.GetByID(ctx, staff, walkIn.ID)
	if err != nil || got.Email != "a@example.com" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}
	if _, err := svc.GetByID(ctx, staff, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDashboard(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	clock := clockAt(t, "2024-07-04")
	rooms := &RoomService{DB: db, Clock: clock}
	promos := &PromotionService{DB: db, Clock: clock}
	guests := NewGuestService(db)
	svc := &DashboardService{Rooms: rooms, Promotions: promos, Guests: guests, Clock: clock}
	ctx := context.Background()

	summer := seedPromotion(t, db, "SUMMER", "25", "2024-07-01", "2024-07-31")
	seedPromotion(t, db, "WINTER", "30", "2024-12-01", "2024-12-31")
	seedRoom(t, db, "1", "200.00", &summer.ID)
	closed := seedRoom(t, db, "2", "90.00", nil)
	if err := db.Model(closed).Update("available", false).Error; err != nil {
		t.Fatalf("close room: %v", err)
	}

	id, guest := seedGuestAccount(t, db, "erin")
	d, err := svc.Build(ctx, id)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Today != "2024-07-04" {
		t.Fatalf("today = %q, want 2024-07-04", d.Today)
	}
	if d.Guest == nil || d.Guest.ID != guest.ID {
		t.Fatalf("guest = %+v, want %d", d.Guest, guest.ID)
	}
	if len(d.Rooms) != 1 || !d.Rooms[0].EffectivePrice.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("rooms = %+v, want room 1 at 150", d.Rooms)
	}
	if len(d.Promotions) != 1 || d.Promotions[0].Code != "SUMMER" {
		t.Fatalf("promotions = %+v, want SUMMER", d.Promotions)
	}

	// An account without a profile still gets a dashboard.
	bare := seedAccount(t, db, "frank")
	d, err = svc.Build(ctx, Identity{AccountID: bare.ID})
	if err != nil {
		t.Fatalf("Build without profile: %v", err)
	}
	if d.Guest != nil {
		t.Fatalf("guest = %+v, want nil", d.Guest)
	}
}

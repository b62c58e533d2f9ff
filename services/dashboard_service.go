package services

import (
	"context"
	"errors"

	"hotel-reservations/models"
)

type DashboardService struct {
	Rooms      *RoomService
	Promotions *PromotionService
	Guests     *GuestService
	Clock      Clock
}

func NewDashboardService(rooms *RoomService, promotions *PromotionService, guests *GuestService) *DashboardService {
	return &DashboardService{Rooms: rooms, Promotions: promotions, Guests: guests}
}

type Dashboard struct {
	Today      string             `json:"today"`
	Guest      *models.Guest      `json:"guest"`
	Rooms      []PricedRoom       `json:"available_rooms"`
	Promotions []models.Promotion `json:"active_promotions"`
}

// Build gathers what a signed-in guest sees first: bookable rooms at
// today's price and the promotions running today.
func (s *DashboardService) Build(ctx context.Context, id Identity) (*Dashboard, error) {
	if err := requireLogin(id); err != nil {
		return nil, err
	}
	today := s.Clock.now()

	rooms, err := s.Rooms.find(ctx, true)
	if err != nil {
		return nil, err
	}
	promos, err := s.Promotions.activeOn(ctx, today)
	if err != nil {
		return nil, err
	}
	guest, err := s.Guests.ForAccount(ctx, id.AccountID)
	if err != nil && !errors.Is(err, ErrGuestProfileRequired) {
		return nil, err
	}

	return &Dashboard{
		Today:      DateOf(today).Format(dateLayout),
		Guest:      guest,
		Rooms:      priceRooms(rooms, today),
		Promotions: promos,
	}, nil
}

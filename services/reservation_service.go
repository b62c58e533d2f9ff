package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-reservations/models"
)

type ReservationService struct {
	DB         *gorm.DB
	Rooms      *RoomService
	Promotions *PromotionService
	Clock      Clock
}

func NewReservationService(db *gorm.DB, rooms *RoomService, promotions *PromotionService) *ReservationService {
	return &ReservationService{DB: db, Rooms: rooms, Promotions: promotions}
}

type ReservationInput struct {
	RoomID       uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	PromotionID  *uint
}

// ReservationOptions are the choices offered when booking.
type ReservationOptions struct {
	Rooms      []PricedRoom       `json:"rooms"`
	Promotions []models.Promotion `json:"promotions"`
}

const reservationTakenMessage = "Reservation with this Room and Check in date already exists."

// ----------------------------------------------------
// CREATE
// ----------------------------------------------------

// Create books a room for the caller's guest profile.
//
// Only the (room, check-in date) pair is unique. Stays that overlap without
// sharing a check-in date are accepted, and check-out is not compared with
// check-in.
func (s *ReservationService) Create(ctx context.Context, id Identity, in ReservationInput) (*models.Reservation, error) {
	log.Printf("➡️ ReservationService.Create account=%d room=%d check_in=%s", id.AccountID, in.RoomID, in.CheckInDate.Format(dateLayout))

	if err := requireLogin(id); err != nil {
		return nil, err
	}

	today := s.Clock.now()
	verr := &ValidationError{}

	room, err := s.Rooms.Get(ctx, in.RoomID)
	switch {
	case errors.Is(err, ErrNotFound):
		verr.Add("room_id", "Select a valid choice. That choice is not one of the available choices.")
	case err != nil:
		return nil, err
	}

	var promo *models.Promotion
	if in.PromotionID != nil {
		promo, err = s.Promotions.FindActive(ctx, *in.PromotionID, today)
		switch {
		case errors.Is(err, ErrNotFound):
			verr.Add("promotion_id", "Select a valid choice. That choice is not one of the available choices.")
		case err != nil:
			return nil, err
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	guest, err := guestForAccount(s.DB.WithContext(ctx), id.AccountID)
	if err != nil {
		return nil, err
	}

	res := &models.Reservation{
		GuestID:      guest.ID,
		RoomID:       room.ID,
		CheckInDate:  toDate(in.CheckInDate),
		CheckOutDate: toDate(in.CheckOutDate),
	}
	if promo != nil {
		snap, err := json.Marshal(models.PromotionSnapshot{
			PromotionID:        promo.ID,
			Code:               promo.Code,
			DiscountPercentage: promo.DiscountPercentage,
			StartDate:          formatDate(promo.StartDate),
			EndDate:            formatDate(promo.EndDate),
			BasePrice:          room.PricePerNight,
			NightlyPrice:       EffectivePrice(room.PricePerNight, promo, today),
		})
		if err != nil {
			return nil, fmt.Errorf("encode promotion snapshot: %w", err)
		}
		res.PromotionID = &promo.ID
		res.PromotionSnapshot = snap
	}

	inserted, err := s.insertIfAbsent(ctx, res)
	if err != nil {
		log.Printf("⬅️ ReservationService.Create error: %v", err)
		return nil, err
	}
	if !inserted {
		log.Printf("⬅️ ReservationService.Create conflict room=%d check_in=%s", room.ID, in.CheckInDate.Format(dateLayout))
		return nil, newConflictError("check_in_date", reservationTakenMessage)
	}

	res.Guest = guest
	res.Room = room
	res.Promotion = promo
	log.Printf("⬅️ ReservationService.Create ok id=%d", res.ID)
	return res, nil
}

// insertIfAbsent writes res unless a reservation for the same room and
// check-in date exists. The unique index decides, so concurrent callers
// racing for one slot see exactly one true.
func (s *ReservationService) insertIfAbsent(ctx context.Context, res *models.Reservation) (bool, error) {
	result := s.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(res)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return false, nil
		}
		if isForeignKeyError(result.Error) {
			return false, NewFieldError(NonFieldErrors, "The selected room or guest no longer exists.")
		}
		return false, fmt.Errorf("insert reservation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ----------------------------------------------------
// READ
// ----------------------------------------------------

// List returns every reservation (view_reservation).
func (s *ReservationService) List(ctx context.Context, id Identity) ([]models.Reservation, error) {
	if err := authorize(id, models.PermViewReservation); err != nil {
		return nil, err
	}
	return s.find(s.DB.WithContext(ctx))
}

// ListMine returns the caller's own reservations.
func (s *ReservationService) ListMine(ctx context.Context, id Identity) ([]models.Reservation, error) {
	if err := requireLogin(id); err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)
	guest, err := guestForAccount(db, id.AccountID)
	if err != nil {
		return nil, err
	}
	return s.find(db.Where("reservations.guest_id = ?", guest.ID))
}

// Options lists the rooms and the promotions a caller can book with today.
func (s *ReservationService) Options(ctx context.Context, id Identity) (*ReservationOptions, error) {
	if err := requireLogin(id); err != nil {
		return nil, err
	}
	rooms, err := s.Rooms.find(ctx, false)
	if err != nil {
		return nil, err
	}
	today := s.Clock.now()
	promos, err := s.Promotions.activeOn(ctx, today)
	if err != nil {
		return nil, err
	}
	return &ReservationOptions{Rooms: priceRooms(rooms, today), Promotions: promos}, nil
}

func (s *ReservationService) find(q *gorm.DB) ([]models.Reservation, error) {
	var out []models.Reservation
	err := q.Preload("Guest").
		Preload("Room").
		Preload("Promotion").
		Order("reservations.id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

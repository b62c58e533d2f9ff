package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-reservations/models"
)

type RoomService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	RoomNumber    string
	RoomType      string
	Description   string
	PricePerNight decimal.Decimal
	Available     *bool // nil means available
	PromotionID   *uint
}

var roomUniqueFields = []uniqueField{
	{column: "room_number", field: "room_number", message: "Room with this Room number already exists."},
}

// ----------------------------------------------------
// CREATE (add_room)
// ----------------------------------------------------
func (s *RoomService) Create(ctx context.Context, id Identity, in RoomInput) (*PricedRoom, error) {
	log.Printf("➡️ RoomService.Create by=%q number=%q", id.Username, in.RoomNumber)

	if err := authorize(id, models.PermAddRoom); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)
	verr := &ValidationError{}
	number := requireText(verr, "room_number", in.RoomNumber)
	roomType := requireText(verr, "room_type", in.RoomType)
	if in.PricePerNight.IsNegative() {
		verr.Add("price_per_night", "Ensure this value is greater than or equal to 0.")
	} else {
		checkDecimal(verr, "price_per_night", in.PricePerNight, 6, 2)
	}

	var promo *models.Promotion
	if in.PromotionID != nil {
		var p models.Promotion
		err := db.First(&p, *in.PromotionID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			verr.Add("promotion_id", "Select a valid choice. That choice is not one of the available choices.")
		case err != nil:
			return nil, fmt.Errorf("load promotion %d: %w", *in.PromotionID, err)
		default:
			promo = &p
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	room := models.Room{
		RoomNumber:    number,
		RoomType:      roomType,
		Description:   strings.TrimSpace(in.Description),
		PricePerNight: in.PricePerNight,
		Available:     in.Available == nil || *in.Available,
		PromotionID:   in.PromotionID,
	}
	if err := db.Omit("Promotion").Create(&room).Error; err != nil {
		log.Printf("⬅️ RoomService.Create error: %v", err)
		return nil, translateConstraint(err, "create room", roomUniqueFields)
	}
	room.Promotion = promo

	log.Printf("⬅️ RoomService.Create ok id=%d", room.ID)
	priced := priceRooms([]models.Room{room}, s.Clock.now())[0]
	return &priced, nil
}

// ----------------------------------------------------
// LIST (view_room)
// ----------------------------------------------------
func (s *RoomService) List(ctx context.Context, id Identity) ([]PricedRoom, error) {
	if err := authorize(id, models.PermViewRoom); err != nil {
		return nil, err
	}
	rooms, err := s.find(ctx, false)
	if err != nil {
		return nil, err
	}
	return priceRooms(rooms, s.Clock.now()), nil
}

// ListAvailable returns rooms open for booking, priced for today.
func (s *RoomService) ListAvailable(ctx context.Context, id Identity) ([]PricedRoom, error) {
	if err := requireLogin(id); err != nil {
		return nil, err
	}
	rooms, err := s.find(ctx, true)
	if err != nil {
		return nil, err
	}
	return priceRooms(rooms, s.Clock.now()), nil
}

// Get loads one room with its promotion.
func (s *RoomService) Get(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("Promotion").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load room %d: %w", roomID, err)
	}
	return &room, nil
}

func (s *RoomService) find(ctx context.Context, availableOnly bool) ([]models.Room, error) {
	q := s.DB.WithContext(ctx).Preload("Promotion").Order("rooms.id")
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

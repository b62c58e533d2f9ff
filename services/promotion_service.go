package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-reservations/models"
)

type PromotionService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

type PromotionInput struct {
	Code               string
	Description        string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
}

var promotionUniqueFields = []uniqueField{
	{column: "code", field: "code", message: "Promotion with this Code already exists."},
}

// ----------------------------------------------------
// CREATE (add_promotion)
// ----------------------------------------------------
func (s *PromotionService) Create(ctx context.Context, id Identity, in PromotionInput) (*models.Promotion, error) {
	log.Printf("➡️ PromotionService.Create by=%q code=%q", id.Username, in.Code)

	if err := authorize(id, models.PermAddPromotion); err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	code := requireText(verr, "code", in.Code)
	if in.DiscountPercentage.IsNegative() || in.DiscountPercentage.GreaterThan(hundred) {
		verr.Add("discount_percentage", "Ensure this value is between 0 and 100.")
	} else {
		checkDecimal(verr, "discount_percentage", in.DiscountPercentage, 5, 2)
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	promo := models.Promotion{
		Code:               code,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          toDate(in.StartDate),
		EndDate:            toDate(in.EndDate),
	}
	if err := s.DB.WithContext(ctx).Create(&promo).Error; err != nil {
		log.Printf("⬅️ PromotionService.Create error: %v", err)
		return nil, translateConstraint(err, "create promotion", promotionUniqueFields)
	}

	log.Printf("⬅️ PromotionService.Create ok id=%d", promo.ID)
	return &promo, nil
}

// ----------------------------------------------------
// LIST (view_promotion)
// ----------------------------------------------------
func (s *PromotionService) List(ctx context.Context, id Identity) ([]models.Promotion, error) {
	if err := authorize(id, models.PermViewPromotion); err != nil {
		return nil, err
	}
	return s.all(ctx)
}

// ListActive returns the promotions valid today. Any authenticated caller may ask.
func (s *PromotionService) ListActive(ctx context.Context, id Identity) ([]models.Promotion, error) {
	if err := requireLogin(id); err != nil {
		return nil, err
	}
	return s.activeOn(ctx, s.Clock.now())
}

func (s *PromotionService) activeOn(ctx context.Context, day time.Time) ([]models.Promotion, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return ActivePromotions(all, day), nil
}

// FindActive loads promotion promoID and checks it is valid on day.
func (s *PromotionService) FindActive(ctx context.Context, promoID uint, day time.Time) (*models.Promotion, error) {
	var promo models.Promotion
	if err := s.DB.WithContext(ctx).First(&promo, promoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load promotion %d: %w", promoID, err)
	}
	if !PromotionActive(&promo, day) {
		return nil, ErrNotFound
	}
	return &promo, nil
}

func (s *PromotionService) all(ctx context.Context) ([]models.Promotion, error) {
	var promos []models.Promotion
	if err := s.DB.WithContext(ctx).Order("id").Find(&promos).Error; err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promos, nil
}

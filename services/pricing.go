package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotel-reservations/models"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// DateOf drops the clock part of t, keeping t's calendar date, and returns it at UTC midnight.
// Every date column is written in this form so equal days compare equal in the store.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(DateOf(t))
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

// PromotionActive reports whether p is valid on the calendar day of asOf.
// Both ends are inclusive. A promotion whose start is after its end is never active.
func PromotionActive(p *models.Promotion, asOf time.Time) bool {
	if p == nil {
		return false
	}
	day := DateOf(asOf)
	start := DateOf(time.Time(p.StartDate))
	end := DateOf(time.Time(p.EndDate))
	if start.After(end) {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// EffectivePrice applies promo to base when promo is active on asOf,
// rounded to cents. Without an active promotion base is returned unchanged.
func EffectivePrice(base decimal.Decimal, promo *models.Promotion, asOf time.Time) decimal.Decimal {
	if !PromotionActive(promo, asOf) {
		return base
	}
	discount := base.Mul(promo.DiscountPercentage).Div(hundred)
	return base.Sub(discount).Round(2)
}

// ActivePromotions keeps the promotions valid on today, in input order.
func ActivePromotions(promotions []models.Promotion, today time.Time) []models.Promotion {
	active := make([]models.Promotion, 0, len(promotions))
	for i := range promotions {
		if PromotionActive(&promotions[i], today) {
			active = append(active, promotions[i])
		}
	}
	return active
}

// PricedRoom is a room together with its nightly price on a given day.
type PricedRoom struct {
	models.Room
	EffectivePrice decimal.Decimal `json:"effective_price"`
}

func priceRooms(rooms []models.Room, asOf time.Time) []PricedRoom {
	out := make([]PricedRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, PricedRoom{Room: r, EffectivePrice: EffectivePrice(r.PricePerNight, r.Promotion, asOf)})
	}
	return out
}

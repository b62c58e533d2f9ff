package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"hotel-reservations/models"
)

func promo(t *testing.T, pct, start, end string) *models.Promotion {
	return &models.Promotion{
		Code:               "P",
		DiscountPercentage: decimal.RequireFromString(pct),
		StartDate:          datatypes.Date(day(t, start)),
		EndDate:            datatypes.Date(day(t, end)),
	}
}

func TestEffectivePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		base  string
		promo *models.Promotion
		asOf  string
		want  string
	}{
		{"no promotion", "100.00", nil, "2024-06-10", "100.00"},
		{"half price", "100.00", promo(t, "50", "2024-06-01", "2024-06-30"), "2024-06-10", "50.00"},
		{"active twenty percent", "100.00", promo(t, "20", "2024-06-01", "2024-06-30"), "2024-06-10", "80.00"},
		{"zero percent", "120.50", promo(t, "0", "2024-06-01", "2024-06-30"), "2024-06-10", "120.50"},
		{"hundred percent", "120.50", promo(t, "100", "2024-06-01", "2024-06-30"), "2024-06-10", "0"},
		{"first day inclusive", "100.00", promo(t, "10", "2024-06-01", "2024-06-30"), "2024-06-01", "90.00"},
		{"last day inclusive", "100.00", promo(t, "10", "2024-06-01", "2024-06-30"), "2024-06-30", "90.00"},
		{"day before start", "100.00", promo(t, "10", "2024-06-01", "2024-06-30"), "2024-05-31", "100.00"},
		{"day after end", "100.00", promo(t, "10", "2024-06-01", "2024-06-30"), "2024-07-01", "100.00"},
		{"start after end never applies", "100.00", promo(t, "50", "2024-06-30", "2024-06-01"), "2024-06-15", "100.00"},
		{"rounded to cents", "99.99", promo(t, "15", "2024-06-01", "2024-06-30"), "2024-06-10", "84.99"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EffectivePrice(decimal.RequireFromString(tt.base), tt.promo, day(t, tt.asOf))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("EffectivePrice = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEffectivePriceIgnoresClockTime(t *testing.T) {
	t.Parallel()

	p := promo(t, "10", "2024-06-01", "2024-06-30")
	lateOnLastDay := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	got := EffectivePrice(decimal.RequireFromString("200"), p, lateOnLastDay)
	if !got.Equal(decimal.RequireFromString("180")) {
		t.Fatalf("EffectivePrice = %s, want 180", got)
	}
}

func TestActivePromotions(t *testing.T) {
	t.Parallel()

	all := []models.Promotion{
		*promo(t, "10", "2024-06-01", "2024-06-09"), // ended yesterday
		*promo(t, "20", "2024-06-10", "2024-06-10"), // today only
		*promo(t, "30", "2024-06-11", "2024-06-20"), // starts tomorrow
		*promo(t, "40", "2024-01-01", "2024-12-31"),
	}
	all[0].Code, all[1].Code, all[2].Code, all[3].Code = "A", "B", "C", "D"

	got := ActivePromotions(all, day(t, "2024-06-10"))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Code != "B" || got[1].Code != "D" {
		t.Fatalf("codes = %q,%q, want B,D", got[0].Code, got[1].Code)
	}
}

func TestActivePromotionsEmpty(t *testing.T) {
	t.Parallel()

	got := ActivePromotions(nil, time.Now())
	if got == nil || len(got) != 0 {
		t.Fatalf("ActivePromotions(nil) = %#v, want empty slice", got)
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 2, 29, 23, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))
	got := DateOf(in)
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
}

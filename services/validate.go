package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// checkDecimal enforces a decimal(maxDigits, places) column shape.
func checkDecimal(verr *ValidationError, field string, d decimal.Decimal, maxDigits, places int32) {
	if !d.Equal(d.Round(places)) {
		verr.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", places))
		return
	}
	limit := decimal.New(1, maxDigits-places)
	if d.Abs().GreaterThanOrEqual(limit) {
		verr.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places))
	}
}

func requireText(verr *ValidationError, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		verr.Add(field, "This field is required.")
	}
	return value
}

// normalizeEmail lowercases the domain part only; the local part is case sensitive.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

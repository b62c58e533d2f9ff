package utils

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type signupForm struct {
	Username  string `json:"username" validate:"required"`
	Password1 string `json:"password1" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
	Email     string `json:"email,omitempty" validate:"email"`
}

func TestFieldErrorsUsesJSONNames(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	err := v.Struct(signupForm{Password1: "short", Password2: "different", Email: "nope"})
	got := FieldErrors(err)

	want := map[string]string{
		"username":  "This field is required.",
		"password1": "Ensure this field has at least 8 characters.",
		"password2": "The two password fields didn't match.",
		"email":     "Enter a valid email address.",
	}
	for field, msg := range want {
		if len(got[field]) != 1 || got[field][0] != msg {
			t.Fatalf("errors[%s] = %v, want [%s]", field, got[field], msg)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("errors = %v, want %d fields", got, len(want))
	}
}

func TestFieldErrorsDecodeProblems(t *testing.T) {
	t.Parallel()

	var dst struct {
		RoomID uint `json:"room_id"`
	}
	err := json.Unmarshal([]byte(`{"room_id":"twelve"}`), &dst)
	if got := FieldErrors(err); len(got["room_id"]) != 1 {
		t.Fatalf("type error: errors = %v, want room_id", got)
	}

	err = json.NewDecoder(strings.NewReader(`{"room_id":`)).Decode(&dst)
	if got := FieldErrors(err); len(got[nonFieldKey]) != 1 {
		t.Fatalf("truncated body: errors = %v, want %s", got, nonFieldKey)
	}

	if got := FieldErrors(nil); len(got) != 0 {
		t.Fatalf("FieldErrors(nil) = %v, want empty", got)
	}
}

func TestDecimalField(t *testing.T) {
	t.Parallel()

	var req struct {
		Price *Decimal `json:"price_per_night"`
	}
	for _, body := range []string{`{"price_per_night":"150.25"}`, `{"price_per_night":150.25}`} {
		req.Price = nil
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if req.Price == nil || req.Price.String() != "150.25" {
			t.Fatalf("%s: price = %v, want 150.25", body, req.Price)
		}
	}

	err := json.NewDecoder(strings.NewReader(`{"price_per_night":"abc"}`)).Decode(&req)
	got := FieldErrors(err)
	if len(got) != 1 || len(got["price_per_night"]) != 1 || got["price_per_night"][0] != "A valid number is required." {
		t.Fatalf("errors = %v, want price_per_night: A valid number is required.", got)
	}
}

package validation

import "testing"

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"gte=0"`
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Struct(sample{Email: "not-an-email", Price: -1})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	details := ToDetails(err)
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail: %q", details["email"])
	}
	if details["price"] != "must be greater than or equal to 0" {
		t.Fatalf("unexpected price detail: %q", details["price"])
	}
}

func TestToDetails_NilError(t *testing.T) {
	if ToDetails(nil) != nil {
		t.Fatal("expected nil details for nil error")
	}
}

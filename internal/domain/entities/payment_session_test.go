package entities

import (
	"errors"
	"testing"
)

func TestPaymentStatusFromCode(t *testing.T) {
	cases := []struct {
		code string
		want PaymentSessionStatus
	}{
		{"2", PaymentSessionStatusAuthorized},
		{"0", PaymentSessionStatusPending},
		{"-1", PaymentSessionStatusCanceled},
		{"-2", PaymentSessionStatusError},
		{"-3", PaymentSessionStatusPending},
		{" 2 ", PaymentSessionStatusAuthorized},
	}
	for _, tc := range cases {
		got, err := PaymentStatusFromCode(tc.code)
		if err != nil {
			t.Fatalf("code %q: unexpected error %v", tc.code, err)
		}
		if got != tc.want {
			t.Fatalf("code %q: expected %s, got %s", tc.code, tc.want, got)
		}
	}
}

func TestPaymentStatusFromCode_Rejects(t *testing.T) {
	for _, code := range []string{"99", "-99", "1", "-4", "", "abc", "2.0"} {
		got, err := PaymentStatusFromCode(code)
		if !errors.Is(err, ErrUnknownStatusCode) {
			t.Fatalf("code %q: expected ErrUnknownStatusCode, got status=%q err=%v", code, got, err)
		}
	}
}

func TestSessionData_StringAndClone(t *testing.T) {
	d := SessionData{"payment_id": " 320 ", "empty": "", "num": 3}
	if v, ok := d.String("payment_id"); !ok || v != "320" {
		t.Fatalf("expected 320, got %q ok=%v", v, ok)
	}
	if _, ok := d.String("empty"); ok {
		t.Fatalf("expected empty string to be absent")
	}
	if _, ok := d.String("num"); ok {
		t.Fatalf("expected non-string to be absent")
	}

	c := d.Clone()
	c["payment_id"] = "other"
	if d["payment_id"] != " 320 " {
		t.Fatalf("clone must not alias the source")
	}
	if got := SessionData(nil).Clone(); got == nil {
		t.Fatalf("clone of nil must be an empty map")
	}
}

func TestPaymentSessionStatus_IsValid(t *testing.T) {
	if !PaymentSessionStatusRequiresMore.IsValid() {
		t.Fatalf("requires_more should be valid")
	}
	if PaymentSessionStatus("captured").IsValid() {
		t.Fatalf("captured is not a session status")
	}
}

package model

import (
	"encoding/json"
	"testing"
)

func TestBadgesFromBits(t *testing.T) {
	// 37 = bits 0, 2, and 5.
	got := BadgesFromBits(37)
	want := Badges{Unused: true, EarlyRespackAdopter: true, Contributor: true}
	if got != want {
		t.Errorf("BadgesFromBits(37) = %+v, want %+v", got, want)
	}
	if bits := got.Bits(); bits != 37 {
		t.Errorf("Bits() = %d, want 37", bits)
	}
}

func TestBadges_RoundTrip(t *testing.T) {
	for n := uint64(0); n < 1<<7; n++ {
		if got := BadgesFromBits(n).Bits(); got != n {
			t.Fatalf("BadgesFromBits(%d).Bits() = %d", n, got)
		}
	}
}

func TestBadges_JSON(t *testing.T) {
	var b Badges
	if err := json.Unmarshal([]byte("6"), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Badges{EarlyModpackAdopter: true, EarlyRespackAdopter: true}
	if b != want {
		t.Errorf("unmarshal = %+v, want %+v", b, want)
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "6" {
		t.Errorf("marshal = %s, want 6", out)
	}
}

func TestPersonalUser_ToUser(t *testing.T) {
	p := PersonalUser{
		ID:            "abc123",
		Username:      "someone",
		Role:          RoleDeveloper,
		EmailVerified: true,
		HasPassword:   true,
		HasTOTP:       false,
	}
	u := p.ToUser()
	if u.ID != "abc123" || u.Username != "someone" {
		t.Fatalf("ToUser() lost identity fields: %+v", u)
	}
	if u.EmailVerified == nil || !*u.EmailVerified {
		t.Errorf("EmailVerified not carried over")
	}
	if u.HasTOTP == nil || *u.HasTOTP {
		t.Errorf("HasTOTP = %v, want false", u.HasTOTP)
	}
}

func TestUser_PayoutDataKey(t *testing.T) {
	// The server schema spells the payout data key "payout_date".
	raw := `{"id":"x","username":"u","avatar_url":"","created":"2023-01-05T10:00:00Z","role":"admin",` +
		`"payout_date":{"balance":1.5,"payout_wallet":"paypal","payout_wallet_type":"email","payout_address":"a@b.c"}}`
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.PayoutData == nil || u.PayoutData.PayoutWallet != "paypal" {
		t.Errorf("payout data not decoded: %+v", u.PayoutData)
	}
}

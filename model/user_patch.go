package model

import (
	"encoding/json"

	"github.com/rinthdev/rinth/optional"
)

// PayoutPatch updates a user's payout settings. Absent fields are left
// unchanged.
type PayoutPatch struct {
	PayoutWallet     optional.Field[string]
	PayoutWalletType optional.Field[string]
	PayoutAddress    optional.Field[string]
}

// MarshalJSON writes only the fields that are not absent.
func (p PayoutPatch) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	optional.Encode(out, "payout_wallet", p.PayoutWallet)
	optional.Encode(out, "payout_wallet_type", p.PayoutWalletType)
	optional.Encode(out, "payout_address", p.PayoutAddress)
	return json.Marshal(out)
}

// UnmarshalJSON reads a payout patch document.
func (p *PayoutPatch) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	var err error
	if p.PayoutWallet, err = optional.Decode[string](obj, "payout_wallet", false); err != nil {
		return err
	}
	if p.PayoutWalletType, err = optional.Decode[string](obj, "payout_wallet_type", false); err != nil {
		return err
	}
	p.PayoutAddress, err = optional.Decode[string](obj, "payout_address", false)
	return err
}

// UserPatch is the payload for editing a user's own profile. The wire key
// for payout data is "payout_date", matching the server schema.
type UserPatch struct {
	Username   optional.Field[string]
	Name       optional.Field[string]
	Email      optional.Field[string]
	Bio        optional.Field[string]
	PayoutData optional.Field[PayoutPatch]
}

// MarshalJSON writes only the fields that are not absent.
func (p UserPatch) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	optional.Encode(out, "username", p.Username)
	optional.Encode(out, "name", p.Name)
	optional.Encode(out, "email", p.Email)
	optional.Encode(out, "bio", p.Bio)
	optional.Encode(out, "payout_date", p.PayoutData)
	return json.Marshal(out)
}

// UnmarshalJSON reads a user patch document, distinguishing missing keys
// from explicit nulls.
func (p *UserPatch) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	var err error
	if p.Username, err = optional.Decode[string](obj, "username", false); err != nil {
		return err
	}
	if p.Name, err = optional.Decode[string](obj, "name", true); err != nil {
		return err
	}
	if p.Email, err = optional.Decode[string](obj, "email", true); err != nil {
		return err
	}
	if p.Bio, err = optional.Decode[string](obj, "bio", true); err != nil {
		return err
	}
	p.PayoutData, err = optional.Decode[PayoutPatch](obj, "payout_date", false)
	return err
}

package model

import (
	"encoding/json"
	"time"

	"github.com/rinthdev/rinth/bitfield"
)

// badgeNames is the declared flag order for the badges bitfield. Bit 0 is
// reserved and currently unused.
var badgeNames = []string{
	"unused",
	"early_modpack_adopter",
	"early_respack_adopter",
	"early_plugin_adopter",
	"alpha_tester",
	"contributor",
	"translator",
}

// Badges are the boolean accolades attached to a user, transmitted as a
// 7-bit integer bitfield.
type Badges struct {
	Unused              bool
	EarlyModpackAdopter bool
	EarlyRespackAdopter bool
	EarlyPluginAdopter  bool
	AlphaTester         bool
	Contributor         bool
	Translator          bool
}

// BadgesFromBits expands the wire integer into named badges.
func BadgesFromBits(n uint64) Badges {
	f := bitfield.Decode(n, badgeNames)
	return Badges{
		Unused:              f["unused"],
		EarlyModpackAdopter: f["early_modpack_adopter"],
		EarlyRespackAdopter: f["early_respack_adopter"],
		EarlyPluginAdopter:  f["early_plugin_adopter"],
		AlphaTester:         f["alpha_tester"],
		Contributor:         f["contributor"],
		Translator:          f["translator"],
	}
}

// Bits packs the badges back into the wire integer.
func (b Badges) Bits() uint64 {
	return bitfield.Encode(map[string]bool{
		"unused":                b.Unused,
		"early_modpack_adopter": b.EarlyModpackAdopter,
		"early_respack_adopter": b.EarlyRespackAdopter,
		"early_plugin_adopter":  b.EarlyPluginAdopter,
		"alpha_tester":          b.AlphaTester,
		"contributor":           b.Contributor,
		"translator":            b.Translator,
	}, badgeNames)
}

// Names lists the set badges in declared bit order.
func (b Badges) Names() []string {
	set := []bool{b.Unused, b.EarlyModpackAdopter, b.EarlyRespackAdopter,
		b.EarlyPluginAdopter, b.AlphaTester, b.Contributor, b.Translator}
	var names []string
	for i, on := range set {
		if on {
			names = append(names, badgeNames[i])
		}
	}
	return names
}

// MarshalJSON encodes the badges as their packed integer.
func (b Badges) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Bits())
}

// UnmarshalJSON decodes a packed integer bitfield.
func (b *Badges) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = BadgesFromBits(n)
	return nil
}

// Payout is a user's payout standing. Only visible to the user themselves.
type Payout struct {
	Balance          float64 `json:"balance"`
	PayoutWallet     string  `json:"payout_wallet"`      // "paypal" or "venmo"
	PayoutWalletType string  `json:"payout_wallet_type"` // "email", "phone" or "user_handle"
	PayoutAddress    string  `json:"payout_address"`
}

// User is the publicly visible data for a user. The nullable account
// fields (email, payout data, auth providers and the boolean credentials)
// only carry values when the user fetches their own record.
type User struct {
	Username      string    `json:"username"`
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Bio           string    `json:"bio"`
	PayoutData    *Payout   `json:"payout_date"`
	ID            string    `json:"id"`
	AvatarURL     string    `json:"avatar_url"`
	Created       time.Time `json:"created"`
	Role          UserRole  `json:"role"`
	Badges        Badges    `json:"badges"`
	AuthProviders []string  `json:"auth_providers"`
	EmailVerified *bool     `json:"email_verified"`
	HasPassword   *bool     `json:"has_password"`
	HasTOTP       *bool     `json:"has_totp"`
	GitHubID      *int64    `json:"github_id"`
}

// PersonalUser is the authenticated user's own record: the same shape as
// User with the private account fields guaranteed present.
type PersonalUser struct {
	Username      string    `json:"username"`
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Bio           string    `json:"bio"`
	PayoutData    *Payout   `json:"payout_date"`
	ID            string    `json:"id"`
	AvatarURL     string    `json:"avatar_url"`
	Created       time.Time `json:"created"`
	Role          UserRole  `json:"role"`
	Badges        Badges    `json:"badges"`
	AuthProviders []string  `json:"auth_providers"`
	EmailVerified bool      `json:"email_verified"`
	HasPassword   bool      `json:"has_password"`
	HasTOTP       bool      `json:"has_totp"`
	GitHubID      *int64    `json:"github_id"`
}

// ToUser widens the personal record to the public shape.
func (p PersonalUser) ToUser() User {
	emailVerified := p.EmailVerified
	hasPassword := p.HasPassword
	hasTOTP := p.HasTOTP
	return User{
		Username:      p.Username,
		Name:          p.Name,
		Email:         p.Email,
		Bio:           p.Bio,
		PayoutData:    p.PayoutData,
		ID:            p.ID,
		AvatarURL:     p.AvatarURL,
		Created:       p.Created,
		Role:          p.Role,
		Badges:        p.Badges,
		AuthProviders: p.AuthProviders,
		EmailVerified: &emailVerified,
		HasPassword:   &hasPassword,
		HasTOTP:       &hasTOTP,
		GitHubID:      p.GitHubID,
	}
}

// PayoutEvent is one entry in a user's payout history.
type PayoutEvent struct {
	Created time.Time `json:"created"`
	Amount  float64   `json:"amount"`
	Status  string    `json:"status"`
}

// PayoutHistory is a user's aggregate payout record.
type PayoutHistory struct {
	AllTime   string        `json:"all_time"`
	LastMonth string        `json:"last_month"`
	Payouts   []PayoutEvent `json:"payouts"`
}

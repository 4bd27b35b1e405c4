// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Kind discriminates the two account variants. Each kind has its own
// table and its own route set; a token never crosses kinds because the
// guard resolves the token subject against the kind's table only.
type Kind string

const (
	KindUser        Kind = "user"
	KindFoodPartner Kind = "food-partner"
)

// Identity is an account record of either kind. PasswordHash is a bcrypt
// hash and must never leave the service layer.
type Identity struct {
	ID           uuid.UUID // PK
	FullName     string
	Email        string // unique within the kind's table, stored lowercase
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is an issued access token together with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// FoodItem is a catalog entry published by a food partner.
type FoodItem struct {
	ID          uuid.UUID // server-generated PK
	Name        string
	Description string
	VideoURL    string    // media object URL returned by the upload store
	PartnerID   uuid.UUID // FK -> food_partners.id
	CreatedAt   time.Time
}

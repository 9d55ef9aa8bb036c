package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingOwner    = errors.New("coupon owner is required")
	ErrMissingPlatform = errors.New("coupon platform is required")
	ErrMissingCategory = errors.New("coupon category is required")
	ErrInvalidValue    = errors.New("coupon value must be positive")
	ErrMissingExpiry   = errors.New("coupon expiry date is required")
	ErrMissingDetails  = errors.New("coupon description and image are required")
	ErrCouponExpired   = errors.New("coupon has expired")
)

// Coupon is a uniquely-owned digital voucher. Ownership itself lives in the
// wallet store; the entity carries the catalog attributes used for display,
// matching and search.
type Coupon struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	platform    string
	category    string
	valueCents  int64
	code        string
	description string
	imageURL    string
	expiresAt   time.Time
	createdAt   time.Time
}

func NewCoupon(
	ownerID uuid.UUID,
	platform, category string,
	valueCents int64,
	code, description, imageURL string,
	expiresAt time.Time,
	now time.Time,
) (*Coupon, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return nil, ErrMissingPlatform
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrMissingCategory
	}
	if valueCents <= 0 {
		return nil, ErrInvalidValue
	}
	if expiresAt.IsZero() {
		return nil, ErrMissingExpiry
	}
	if strings.TrimSpace(description) == "" || strings.TrimSpace(imageURL) == "" {
		return nil, ErrMissingDetails
	}

	return &Coupon{
		id:          uuid.New(),
		ownerID:     ownerID,
		platform:    platform,
		category:    category,
		valueCents:  valueCents,
		code:        strings.TrimSpace(code),
		description: strings.TrimSpace(description),
		imageURL:    strings.TrimSpace(imageURL),
		expiresAt:   expiresAt,
		createdAt:   now,
	}, nil
}

func (c *Coupon) HasExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

func (c *Coupon) ValidateUsage(now time.Time) error {
	if c.HasExpired(now) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Coupon) Platform() string     { return c.platform }
func (c *Coupon) Category() string     { return c.category }
func (c *Coupon) ValueCents() int64    { return c.valueCents }
func (c *Coupon) Code() string         { return c.code }
func (c *Coupon) Description() string  { return c.description }
func (c *Coupon) ImageURL() string     { return c.imageURL }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }

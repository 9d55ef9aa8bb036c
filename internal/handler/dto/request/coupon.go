package request

import (
	"strings"

	"coupon-swap/internal/usecase/commands"

	"github.com/google/uuid"
)

type UploadCouponRequest struct {
	OwnerID     uuid.UUID `json:"owner_id" binding:"required"`
	Platform    string    `json:"platform" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	ValueCents  int64     `json:"value_cents" binding:"required,gt=0"`
	Code        *string   `json:"code,omitempty"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"image_url" binding:"required"`
	ExpiresAt   string    `json:"expires_at" binding:"required"` // RFC3339
}

func (r UploadCouponRequest) ToCommand() commands.UploadCouponCommand {
	code := ""
	if r.Code != nil {
		code = strings.TrimSpace(*r.Code)
	}
	return commands.UploadCouponCommand{
		OwnerID:     r.OwnerID,
		Platform:    r.Platform,
		Category:    r.Category,
		ValueCents:  r.ValueCents,
		Code:        code,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		ExpiresAt:   r.ExpiresAt,
	}
}

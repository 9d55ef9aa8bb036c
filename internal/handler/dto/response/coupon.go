package response

import (
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Platform    string    `json:"platform"`
	Category    string    `json:"category"`
	ValueCents  int64     `json:"valueCents"`
	Code        *string   `json:"code,omitempty"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	ExpiresAt   string    `json:"expiresAt"`
	CreatedAt   string    `json:"createdAt"`
}

type CouponMatchResponse struct {
	CouponResponse
	Score int `json:"score"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Platform:    v.Platform,
		Category:    v.Category,
		ValueCents:  v.ValueCents,
		Code:        v.Code,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		ExpiresAt:   v.ExpiresAt,
		CreatedAt:   v.CreatedAt,
	}
}

func FromCouponList(views []*queries.CouponView) []*CouponResponse {
	result := make([]*CouponResponse, len(views))
	for i, v := range views {
		result[i] = FromCouponView(v)
	}
	return result
}

func FromCouponMatches(views []*queries.CouponMatchView) []*CouponMatchResponse {
	result := make([]*CouponMatchResponse, len(views))
	for i, v := range views {
		result[i] = &CouponMatchResponse{
			CouponResponse: *FromCouponView(&v.CouponView),
			Score:          v.Score,
		}
	}
	return result
}

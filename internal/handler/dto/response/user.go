package response

import (
	"time"

	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PreferredPlatforms  []string  `json:"preferredPlatforms"`
	PreferredCategories []string  `json:"preferredCategories"`
	CreatedAt           time.Time `json:"createdAt"`
}

type WalletResponse struct {
	UserID    uuid.UUID   `json:"userId"`
	CouponIDs []uuid.UUID `json:"couponIds"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Email:               v.Email,
		PreferredPlatforms:  v.PreferredPlatforms,
		PreferredCategories: v.PreferredCategories,
		CreatedAt:           v.CreatedAt,
	}
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	return &WalletResponse{
		UserID:    v.UserID,
		CouponIDs: v.CouponIDs,
	}
}

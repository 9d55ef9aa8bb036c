package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Trade errors
	ErrTradeNotFound  = errors.New("trade not found")
	ErrTradeConflict  = errors.New("trade conflict")
	ErrNotTradeParty  = errors.New("user is not a party of the trade")
	ErrCouponNotOwned = errors.New("coupon is not owned by the expected party")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

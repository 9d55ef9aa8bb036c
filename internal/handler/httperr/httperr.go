package httperr

import (
	"net/http"

	"coupon-swap/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps usecase sentinels to HTTP statuses so every
// handler classifies failures the same way.
func AbortWithDomainError(c *gin.Context, err error, msg string) {
	AbortWithError(c, statusFor(err), err, msg, nil)
}

// errs.Is rather than errors.Is: the usecases attach sentinels as marks,
// which the stdlib chain walk does not reach.
func statusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrTradeNotFound),
		errs.Is(err, errs.ErrCouponNotFound),
		errs.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrNotTradeParty):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrTradeConflict),
		errs.Is(err, errs.ErrCouponNotOwned):
		return http.StatusConflict
	case errs.Is(err, errs.ErrDomainValidation),
		errs.Is(err, errs.ErrInvalidCoupon):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

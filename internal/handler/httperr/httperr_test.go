//go:build unit

package httperr

import (
	"net/http"
	"testing"

	"coupon-swap/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// Usecases attach sentinels as marks, so classification must hold for
// marked errors as well as bare and wrapped ones.
func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "marked validation error",
			err:  errs.Mark(errs.New("parties are equal"), errs.ErrDomainValidation),
			want: http.StatusBadRequest,
		},
		{
			name: "marked authorization error",
			err:  errs.Mark(errs.New("uid is not a party"), errs.ErrNotTradeParty),
			want: http.StatusForbidden,
		},
		{
			name: "marked not found",
			err:  errs.Mark(errs.New("no such row"), errs.ErrTradeNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "marked user not found",
			err:  errs.Mark(errs.New("owner row missing"), errs.ErrUserNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "bare conflict",
			err:  errs.ErrTradeConflict,
			want: http.StatusConflict,
		},
		{
			name: "wrapped ownership conflict",
			err:  errs.Wrap(errs.ErrCouponNotOwned, "settlement"),
			want: http.StatusConflict,
		},
		{
			name: "unclassified failure",
			err:  errs.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

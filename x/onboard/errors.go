package onboard

import (
	"github.com/guild-net/guild/errors"
)

var (
	// ErrInvalidCoupon is returned when a coupon signature does not
	// resolve to the KYC signer of the charter. A coupon presented
	// with the wrong nonce fails this way too, because the nonce is
	// part of the signed hash.
	ErrInvalidCoupon = errors.Register(150, "invalid coupon")

	// ErrNonceReplay is returned when a valid coupon is presented
	// out of order.
	ErrNonceReplay = errors.Register(151, "nonce replayed")

	// ErrAlreadyMember is returned when an active member onboards a
	// charter that does not allow topping up.
	ErrAlreadyMember = errors.Register(152, "already a member")

	// ErrBelowMinimum is returned when a contribution does not buy a
	// single unit.
	ErrBelowMinimum = errors.Register(153, "contribution below minimum")

	// ErrUnitLimit is returned when a contribution would push the
	// member above the unit limit of the charter.
	ErrUnitLimit = errors.Register(154, "unit limit exceeded")
)

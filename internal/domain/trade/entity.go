package trade

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingParty     = errors.New("both trade parties are required")
	ErrSameParty        = errors.New("trade parties must be distinct")
	ErrMissingCoupon    = errors.New("both trade coupons are required")
	ErrMissingRoom      = errors.New("trade room is required")
	ErrNotParticipant   = errors.New("user is not a participant of the trade")
	ErrAlreadySettled   = errors.New("trade is already confirmed")
	ErrInvalidTradeData = errors.New("invalid trade data")
)

// Trade is a proposed two-party coupon exchange. Its status is always
// derivable from the confirmation set: empty -> pending, one party ->
// waiting, both parties -> confirmed. A confirmed trade is immutable.
type Trade struct {
	id          uuid.UUID
	partyA      uuid.UUID
	partyB      uuid.UUID
	couponFromA uuid.UUID
	couponFromB uuid.UUID
	roomID      RoomID
	status      Status
	confirmedBy ConfirmationSet
	version     int32
	createdAt   time.Time
	confirmedAt *time.Time
}

func NewTrade(
	partyA, partyB uuid.UUID,
	couponFromA, couponFromB uuid.UUID,
	roomID string,
	now time.Time,
) (*Trade, error) {
	if partyA == uuid.Nil || partyB == uuid.Nil {
		return nil, ErrMissingParty
	}
	if partyA == partyB {
		return nil, ErrSameParty
	}
	if couponFromA == uuid.Nil || couponFromB == uuid.Nil {
		return nil, ErrMissingCoupon
	}
	room, err := NewRoomID(roomID)
	if err != nil {
		return nil, err
	}

	return &Trade{
		id:          uuid.New(),
		partyA:      partyA,
		partyB:      partyB,
		couponFromA: couponFromA,
		couponFromB: couponFromB,
		roomID:      room,
		status:      StatusPending,
		confirmedBy: NewConfirmationSet(nil),
		version:     1,
		createdAt:   now,
	}, nil
}

func ReconstructTrade(
	id, partyA, partyB uuid.UUID,
	couponFromA, couponFromB uuid.UUID,
	roomID string,
	status Status,
	confirmedBy []uuid.UUID,
	version int32,
	createdAt time.Time,
	confirmedAt *time.Time,
) (*Trade, error) {
	if !status.IsValid() {
		return nil, ErrInvalidTradeData
	}
	return &Trade{
		id:          id,
		partyA:      partyA,
		partyB:      partyB,
		couponFromA: couponFromA,
		couponFromB: couponFromB,
		roomID:      RoomID{value: roomID},
		status:      status,
		confirmedBy: NewConfirmationSet(confirmedBy),
		version:     version,
		createdAt:   createdAt,
		confirmedAt: confirmedAt,
	}, nil
}

// Confirm records uid's agreement and derives the next status. Re-confirming
// is a no-op (changed=false), as is confirming an already settled trade.
func (t *Trade) Confirm(uid uuid.UUID, now time.Time) (changed bool, err error) {
	if !t.IsParty(uid) {
		return false, ErrNotParticipant
	}
	if t.status == StatusConfirmed {
		return false, nil
	}
	if t.confirmedBy.Contains(uid) {
		return false, nil
	}

	t.confirmedBy = t.confirmedBy.Union(uid)
	t.status = StatusForConfirmations(t.confirmedBy.Len())
	if t.status == StatusConfirmed {
		confirmedAt := now
		t.confirmedAt = &confirmedAt
	}
	return true, nil
}

func (t *Trade) IsParty(uid uuid.UUID) bool {
	return uid == t.partyA || uid == t.partyB
}

func (t *Trade) IsConfirmed() bool {
	return t.status == StatusConfirmed
}

func (t *Trade) IsOpen() bool {
	return t.status.IsOpen()
}

// CounterpartyCoupon returns the coupon uid receives when the trade settles.
func (t *Trade) CounterpartyCoupon(uid uuid.UUID) (uuid.UUID, error) {
	switch uid {
	case t.partyA:
		return t.couponFromB, nil
	case t.partyB:
		return t.couponFromA, nil
	default:
		return uuid.Nil, ErrNotParticipant
	}
}

func (t *Trade) ID() uuid.UUID            { return t.id }
func (t *Trade) PartyA() uuid.UUID        { return t.partyA }
func (t *Trade) PartyB() uuid.UUID        { return t.partyB }
func (t *Trade) CouponFromA() uuid.UUID   { return t.couponFromA }
func (t *Trade) CouponFromB() uuid.UUID   { return t.couponFromB }
func (t *Trade) RoomID() RoomID           { return t.roomID }
func (t *Trade) Status() Status           { return t.status }
func (t *Trade) ConfirmedBy() []uuid.UUID { return t.confirmedBy.Values() }
func (t *Trade) Version() int32           { return t.version }
func (t *Trade) CreatedAt() time.Time     { return t.createdAt }
func (t *Trade) ConfirmedAt() *time.Time  { return t.confirmedAt }

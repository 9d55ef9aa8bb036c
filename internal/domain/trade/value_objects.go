package trade

import (
	"github.com/google/uuid"
)

// ConfirmationSet is the ordered set of parties that confirmed a trade.
// It persists as an explicit ordered list so it round-trips through storage
// deterministically; Union keeps insertion order and never duplicates.
type ConfirmationSet struct {
	ids []uuid.UUID
}

func NewConfirmationSet(ids []uuid.UUID) ConfirmationSet {
	s := ConfirmationSet{}
	for _, id := range ids {
		s = s.Union(id)
	}
	return s
}

func (s ConfirmationSet) Union(id uuid.UUID) ConfirmationSet {
	if s.Contains(id) {
		return s
	}
	next := make([]uuid.UUID, 0, len(s.ids)+1)
	next = append(next, s.ids...)
	next = append(next, id)
	return ConfirmationSet{ids: next}
}

func (s ConfirmationSet) Contains(id uuid.UUID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

func (s ConfirmationSet) Len() int {
	return len(s.ids)
}

// Values returns a copy; callers cannot mutate the set through it.
func (s ConfirmationSet) Values() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

type RoomID struct {
	value string
}

func NewRoomID(value string) (RoomID, error) {
	if value == "" {
		return RoomID{}, ErrMissingRoom
	}
	return RoomID{value: value}, nil
}

func (r RoomID) String() string {
	return r.value
}

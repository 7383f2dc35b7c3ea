package domain

import "fmt"

var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusAccepted, BookingStatusCancelled},
	BookingStatusAccepted: {BookingStatusCancelled},
}

// Transition checks a status change against the booking state machine.
// Accepted -> Accepted is allowed as a no-op and reported through noop.
func Transition(from, to BookingStatus) (noop bool, err error) {
	if from == BookingStatusAccepted && to == BookingStatusAccepted {
		return true, nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return false, nil
		}
	}
	return false, &TransitionError{From: from, To: to}
}

// AuthorizeTransition checks that actor may move b to the requested status.
// The actor must be the booking's traveler or the property's owner, matching the claimed role;
// only the owner may accept. A cancelled booking is left to Transition, which rejects any move.
func AuthorizeTransition(actor Actor, b *Booking, to BookingStatus) error {
	switch actor.Role {
	case RoleOwner:
		if actor.ID != b.OwnerID {
			return fmt.Errorf("%w: user %d does not own property %d", ErrForbidden, actor.ID, b.PropertyID)
		}
	case RoleTraveler:
		if actor.ID != b.TravelerID {
			return fmt.Errorf("%w: booking %d belongs to another traveler", ErrForbidden, b.ID)
		}
		if to == BookingStatusAccepted && !b.Status.Terminal() {
			return fmt.Errorf("%w: only the owner can accept a booking", ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: unknown role %q", ErrForbidden, actor.Role)
	}
	return nil
}

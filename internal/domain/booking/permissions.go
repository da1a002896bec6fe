package booking

import (
	"github.com/google/uuid"

	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// Actor is the identity requesting an operation on a booking. The caller is
// authenticated elsewhere; the booking domain only sees id and role.
type Actor struct {
	ID   uuid.UUID
	Role auth.Role
}

// AuthorizeTransition decides whether the actor may move the booking to the
// requested status. The transition table is checked first so that "this
// booking is already completed" and "you may not do that" stay distinct
// error kinds.
//
// Admins may request any allowed transition. The owning professional may
// request any allowed transition. The owning client may only cancel, and
// only while the booking is pending or confirmed.
func AuthorizeTransition(actor Actor, b *Booking, target BookingStatus) error {
	if !b.Status().CanTransitionTo(target) {
		return domain.NewInvalidStateError(b.Status().String(), target.String())
	}

	switch actor.Role {
	case auth.RoleAdmin:
		return nil
	case auth.RoleProfessional:
		if b.ProfessionalID() != actor.ID {
			return domain.NewForbiddenError("booking belongs to another professional")
		}
		return nil
	case auth.RoleClient:
		if b.ClientID() != actor.ID {
			return domain.NewForbiddenError("booking belongs to another client")
		}
		if target != StatusCancelled {
			return domain.NewForbiddenError("clients may only cancel bookings")
		}
		if b.Status() != StatusPending && b.Status() != StatusConfirmed {
			return domain.NewForbiddenError("booking can no longer be cancelled by the client")
		}
		return nil
	}
	return domain.NewForbiddenError("unknown role")
}

// AuthorizeDelete decides whether the actor may permanently remove the
// booking. Deletion is a hard removal, not a transition: only admins or the
// owning client may delete, and only while the booking is pending or
// cancelled.
func AuthorizeDelete(actor Actor, b *Booking) error {
	switch actor.Role {
	case auth.RoleAdmin:
	case auth.RoleClient:
		if b.ClientID() != actor.ID {
			return domain.NewForbiddenError("booking belongs to another client")
		}
	default:
		return domain.NewForbiddenError("only admins or the booking's client may delete it")
	}

	if b.Status() != StatusPending && b.Status() != StatusCancelled {
		return domain.NewInvalidStateError(b.Status().String(), "deleted")
	}
	return nil
}

// AuthorizeView decides whether the actor may read the booking.
func AuthorizeView(actor Actor, b *Booking) error {
	if actor.Role == auth.RoleAdmin || b.ClientID() == actor.ID || b.ProfessionalID() == actor.ID {
		return nil
	}
	return domain.NewForbiddenError("no access to this booking")
}

package booking

import "campusbook/models"

// CanModify is the single capability check for booking mutation: admins may
// modify any booking, owners only their own and only while it is still
// pending. Call sites consume this uniformly instead of re-deriving
// owner-vs-admin branches.
func CanModify(actor models.Actor, b *models.Booking) bool {
	if actor.IsAdmin() {
		return true
	}
	return b.UserID == actor.ID && b.Status == models.StatusPending
}

// CanView reports whether the actor may read the booking at all.
func CanView(actor models.Actor, b *models.Booking) bool {
	return actor.IsAdmin() || b.UserID == actor.ID
}

// CanCancel reports whether the actor may request cancellation. Owners may
// cancel their own bookings in any state the transition table allows;
// whether the state allows it is checked separately.
func CanCancel(actor models.Actor, b *models.Booking) bool {
	return actor.IsAdmin() || b.UserID == actor.ID
}

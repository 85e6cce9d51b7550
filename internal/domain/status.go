package domain

// BookingStatus is the persisted lifecycle state of a booking. A booking
// only ever advances forward: PENDING -> SUCCESS -> checked_in -> checked_out.
// The literal values match what the dashboard and mobile clients expect.
type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "SUCCESS"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomBooked      RoomStatus = "Booked"
	RoomUnavailable RoomStatus = "Unavailable"
)

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "pending"
	ServiceInProgress ServiceStatus = "in_progress"
	ServiceCompleted  ServiceStatus = "completed"
	ServiceCancelled  ServiceStatus = "cancelled"
)

// CheckAction is what a guest or receptionist performs at the desk.
type CheckAction string

const (
	ActionCheckin  CheckAction = "checkin"
	ActionCheckout CheckAction = "checkout"
)

// ActorRole identifies who performed a check action.
type ActorRole string

const (
	ActorGuest     ActorRole = "guest"
	ActorReception ActorRole = "reception"
)

// forwardOrder gives each booking state its position on the one-way path.
var forwardOrder = map[BookingStatus]int{
	BookingPending:    0,
	BookingConfirmed:  1,
	BookingCheckedIn:  2,
	BookingCheckedOut: 3,
}

func (s BookingStatus) IsValid() bool {
	_, ok := forwardOrder[s]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCheckedOut
}

func (a CheckAction) IsValid() bool {
	return a == ActionCheckin || a == ActionCheckout
}

func (r ActorRole) IsValid() bool {
	return r == ActorGuest || r == ActorReception
}

// NextFor validates a check action against the current status and returns the
// target status. Force bypasses the checked_in precondition for checkout; it
// is reserved for the reception checkout-with-payment flow.
func (s BookingStatus) NextFor(action CheckAction, force bool) (BookingStatus, error) {
	switch action {
	case ActionCheckin:
		if s != BookingConfirmed {
			return s, ValidationError{
				Field: "booking_status",
				Msg:   "check-in requires a confirmed booking (payment status SUCCESS), current status is " + string(s),
			}
		}
		return BookingCheckedIn, nil
	case ActionCheckout:
		if force {
			if s == BookingCheckedOut {
				return s, ValidationError{Field: "booking_status", Msg: "booking is already checked out"}
			}
			return BookingCheckedOut, nil
		}
		if s != BookingCheckedIn {
			return s, ValidationError{
				Field: "booking_status",
				Msg:   "checkout requires a checked-in booking, current status is " + string(s),
			}
		}
		return BookingCheckedOut, nil
	default:
		return s, ValidationError{Field: "action_type", Msg: "must be checkin or checkout"}
	}
}

// AfterSettlement returns the booking status once a payment has settled.
// A booking that already moved past SUCCESS keeps its current state so the
// status never walks backwards.
func (s BookingStatus) AfterSettlement() BookingStatus {
	if forwardOrder[s] < forwardOrder[BookingConfirmed] {
		return BookingConfirmed
	}
	return s
}

// RoomStatusFor is the single authority for the room status that backs a
// booking in the given state. Both the settlement path and the check-action
// path go through it so the two writers cannot disagree.
func RoomStatusFor(s BookingStatus) RoomStatus {
	switch s {
	case BookingConfirmed, BookingCheckedIn:
		return RoomBooked
	default:
		return RoomAvailable
	}
}

package domain

import "testing"

func TestCheckinRequiresConfirmedBooking(t *testing.T) {
	next, err := BookingConfirmed.NextFor(ActionCheckin, false)
	if err != nil {
		t.Fatalf("checkin from SUCCESS should pass, got %v", err)
	}
	if next != BookingCheckedIn {
		t.Fatalf("expected checked_in, got %s", next)
	}

	for _, from := range []BookingStatus{BookingPending, BookingCheckedIn, BookingCheckedOut} {
		if _, err := from.NextFor(ActionCheckin, false); err == nil {
			t.Fatalf("checkin from %s should be rejected", from)
		} else if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestCheckoutRequiresCheckedIn(t *testing.T) {
	next, err := BookingCheckedIn.NextFor(ActionCheckout, false)
	if err != nil {
		t.Fatalf("checkout from checked_in should pass, got %v", err)
	}
	if next != BookingCheckedOut {
		t.Fatalf("expected checked_out, got %s", next)
	}

	if _, err := BookingConfirmed.NextFor(ActionCheckout, false); err == nil {
		t.Fatalf("checkout from SUCCESS without force should be rejected")
	}
	// A loser of the checkout race re-reads checked_out and must fail here.
	if _, err := BookingCheckedOut.NextFor(ActionCheckout, false); err == nil {
		t.Fatalf("checkout from checked_out should be rejected")
	} else if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestForcedCheckoutBypassesPrecondition(t *testing.T) {
	for _, from := range []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn} {
		next, err := from.NextFor(ActionCheckout, true)
		if err != nil {
			t.Fatalf("forced checkout from %s should pass, got %v", from, err)
		}
		if next != BookingCheckedOut {
			t.Fatalf("expected checked_out from %s, got %s", from, next)
		}
	}

	if _, err := BookingCheckedOut.NextFor(ActionCheckout, true); err == nil {
		t.Fatalf("forced checkout on a checked_out booking should be rejected")
	}
}

func TestAfterSettlementNeverWalksBackwards(t *testing.T) {
	if got := BookingPending.AfterSettlement(); got != BookingConfirmed {
		t.Fatalf("expected SUCCESS after settlement, got %s", got)
	}
	if got := BookingConfirmed.AfterSettlement(); got != BookingConfirmed {
		t.Fatalf("settlement should be idempotent on SUCCESS, got %s", got)
	}
	if got := BookingCheckedIn.AfterSettlement(); got != BookingCheckedIn {
		t.Fatalf("settlement must not regress checked_in, got %s", got)
	}
	if got := BookingCheckedOut.AfterSettlement(); got != BookingCheckedOut {
		t.Fatalf("settlement must not regress checked_out, got %s", got)
	}
}

func TestRoomStatusFollowsBooking(t *testing.T) {
	cases := map[BookingStatus]RoomStatus{
		BookingPending:    RoomAvailable,
		BookingConfirmed:  RoomBooked,
		BookingCheckedIn:  RoomBooked,
		BookingCheckedOut: RoomAvailable,
	}
	for booking, want := range cases {
		if got := RoomStatusFor(booking); got != want {
			t.Fatalf("RoomStatusFor(%s)=%s, want %s", booking, got, want)
		}
	}
}

func TestStatusPathIsForwardOnly(t *testing.T) {
	// Walk the only legal full path and confirm each hop advances.
	path := []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut}
	for i := 1; i < len(path); i++ {
		if forwardOrder[path[i]] <= forwardOrder[path[i-1]] {
			t.Fatalf("%s should come after %s", path[i], path[i-1])
		}
	}
	if !BookingCheckedOut.IsTerminal() {
		t.Fatalf("checked_out must be terminal")
	}
}

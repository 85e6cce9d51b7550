package models

// BillingSummary is the computed charge total for a guest's latest booking.
// All fields are zero-valued when the guest has no bookings.
type BillingSummary struct {
	GuestID        int64   `json:"guestId"`
	BookingID      int64   `json:"bookingId"`
	Branch         string  `json:"branch"`
	RoomCharges    float64 `json:"roomCharges"`
	ServiceCharges float64 `json:"serviceCharges"`
	TaxRate        float64 `json:"taxRate"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
}

// Guest holds the contact facts the notifier needs.
type Guest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

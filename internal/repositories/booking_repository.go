package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	intdb "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/db"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id,
	       COALESCE(room_id,0),
	       COALESCE(branch_id,0),
	       COALESCE(guest_id,0),
	       COALESCE(guest_name,''),
	       COALESCE(guest_email,''),
	       COALESCE(guest_phone,''),
	       COALESCE(guests,0),
	       COALESCE(nights,0),
	       COALESCE(notes,''),
	       COALESCE(booking_status,''),
	       created_at`

func scanBooking(row *sql.Row) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&b.BranchID,
		&b.GuestID,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.Guests,
		&b.Nights,
		&b.Notes,
		&b.Status,
		&b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// GetByID fetches a booking by primary key.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	return scanBooking(row)
}

// LatestByGuest returns the guest's most recent booking. A guest with no
// bookings yields NotFoundError.
func (r BookingRepository) LatestByGuest(guestID int64) (models.Booking, error) {
	if guestID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "guest_id", Msg: "must be positive"}
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+`
		FROM bookings
		WHERE guest_id=?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, guestID)
	return scanBooking(row)
}

// Create inserts a new PENDING booking and returns its id.
func (r BookingRepository) Create(in models.BookingInput) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings
			(room_id, branch_id, guest_id, guest_name, guest_email, guest_phone,
			 guests, nights, notes, booking_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		in.RoomID,
		in.BranchID,
		in.GuestID,
		in.GuestName,
		in.GuestEmail,
		in.GuestPhone,
		in.Guests,
		in.Nights,
		intdb.NullIfEmpty(in.Notes),
		string(domain.BookingPending),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LockForAction reads status and room under a row lock so concurrent
// transitions on the same booking serialize on the transaction.
func (r BookingRepository) LockForAction(tx *sql.Tx, id int64) (domain.BookingStatus, int64, error) {
	var (
		status string
		roomID int64
	)
	err := tx.QueryRow(`
		SELECT COALESCE(booking_status,''), COALESCE(room_id,0)
		FROM bookings
		WHERE id=?
		FOR UPDATE`, id).Scan(&status, &roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return "", 0, err
	}
	return domain.BookingStatus(status), roomID, nil
}

// UpdateStatus writes the booking status through any Execer (tx or db).
func (r BookingRepository) UpdateStatus(q intdb.Execer, id int64, status domain.BookingStatus) error {
	_, err := q.Exec(`UPDATE bookings SET booking_status=? WHERE id=?`, string(status), id)
	return err
}

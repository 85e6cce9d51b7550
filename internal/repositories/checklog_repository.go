package repositories

import (
	"database/sql"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	intdb "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/db"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
)

// CheckLogRepository only ever appends; there is no update or delete path.
type CheckLogRepository struct {
	DB *sql.DB
}

func (r CheckLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert appends one check log entry through any Execer (tx or db).
func (r CheckLogRepository) Insert(q intdb.Execer, entry models.CheckLog) error {
	var actorID any
	if entry.ActorID > 0 {
		actorID = entry.ActorID
	}
	_, err := q.Exec(`
		INSERT INTO check_logs (booking_id, action_by, actor_id, action_type, notes, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		entry.BookingID,
		string(entry.ActionBy),
		actorID,
		string(entry.ActionType),
		intdb.NullIfEmpty(entry.Notes),
	)
	return err
}

// ListByBooking returns the audit trail newest-first.
func (r CheckLogRepository) ListByBooking(bookingID int64) ([]models.CheckLog, error) {
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(booking_id,0),
		       COALESCE(action_by,''),
		       COALESCE(actor_id,0),
		       COALESCE(action_type,''),
		       COALESCE(notes,''),
		       created_at
		FROM check_logs
		WHERE booking_id=?
		ORDER BY created_at DESC, id DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CheckLog{}
	for rows.Next() {
		var entry models.CheckLog
		if err := rows.Scan(
			&entry.ID,
			&entry.BookingID,
			&entry.ActionBy,
			&entry.ActorID,
			&entry.ActionType,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

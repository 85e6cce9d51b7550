package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	intdb "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/db"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
)

type RoomRepository struct {
	DB *sql.DB
}

func (r RoomRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID fetches a room by primary key.
func (r RoomRepository) GetByID(id int64) (models.Room, error) {
	var room models.Room
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(branch_id,0),
		       COALESCE(room_name,''),
		       COALESCE(room_type,''),
		       COALESCE(price,0),
		       COALESCE(capacity,0),
		       COALESCE(status,'')
		FROM rooms
		WHERE id=? LIMIT 1`, id).Scan(
		&room.ID,
		&room.BranchID,
		&room.Name,
		&room.Type,
		&room.Price,
		&room.Capacity,
		&room.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, domain.NotFoundError{Resource: "room", Err: err}
	}
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// UpdateStatus writes the room status through any Execer (tx or db).
func (r RoomRepository) UpdateStatus(q intdb.Execer, id int64, status domain.RoomStatus) error {
	_, err := q.Exec(`UPDATE rooms SET status=? WHERE id=?`, string(status), id)
	return err
}

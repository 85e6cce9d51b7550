package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
)

type GuestRepository struct {
	DB *sql.DB
}

func (r GuestRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID fetches the contact facts needed for notifications.
func (r GuestRepository) GetByID(id int64) (models.Guest, error) {
	var g models.Guest
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(first_name,''),
		       COALESCE(last_name,''),
		       COALESCE(email,'')
		FROM guests
		WHERE id=? LIMIT 1`, id).Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Guest{}, domain.NotFoundError{Resource: "guest", Err: err}
	}
	if err != nil {
		return models.Guest{}, err
	}
	return g, nil
}

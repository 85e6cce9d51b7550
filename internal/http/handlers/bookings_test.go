package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func newBookingRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", CreateBooking)
	return r, mock, func() {
		_ = db.Close()
		intconfig.DB = nil
	}
}

func postBooking(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingRejectsInvalidInput(t *testing.T) {
	r, mock, closeDB := newBookingRouter(t)
	defer closeDB()

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "zero guests",
			body:  `{"room_id":3,"branch_id":1,"guest_id":5,"guest_name":"Ana","guests":0,"nights":2}`,
			field: "guests",
		},
		{
			name:  "negative nights",
			body:  `{"room_id":3,"branch_id":1,"guest_id":5,"guest_name":"Ana","guests":2,"nights":-1}`,
			field: "nights",
		},
		{
			name:  "blank guest name",
			body:  `{"room_id":3,"branch_id":1,"guest_id":5,"guest_name":"  ","guests":2,"nights":2}`,
			field: "guest_name",
		},
	}

	for _, tc := range cases {
		w := postBooking(r, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), tc.field) {
			t.Fatalf("%s: response should name the offending field %q: %s", tc.name, tc.field, w.Body.String())
		}
	}

	// No mock expectations were declared: rejected intake never touches the database.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("validation failure leaked a query: %v", err)
	}
}

func TestCreateBookingStartsPending(t *testing.T) {
	r, mock, closeDB := newBookingRouter(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery(`FROM bookings WHERE id=\? LIMIT 1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "branch_id", "guest_id", "guest_name", "guest_email",
			"guest_phone", "guests", "nights", "notes", "booking_status", "created_at",
		}).AddRow(int64(42), int64(3), int64(1), int64(5), "Ana", "ana@example.com",
			"", 2, 2, "", "PENDING", time.Now()))

	body := `{"room_id":3,"branch_id":1,"guest_id":5,"guest_name":"Ana","guest_email":"ana@example.com","guests":2,"nights":2}`
	w := postBooking(r, body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"booking_status":"PENDING"`) {
		t.Fatalf("new booking should start PENDING: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

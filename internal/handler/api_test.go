package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/railbook/train-booking/internal/config"
	"github.com/railbook/train-booking/internal/database"
	"github.com/railbook/train-booking/internal/handler"
	"github.com/railbook/train-booking/internal/repository"
	"github.com/railbook/train-booking/internal/router"
)

// newTestAPI wires the full route table against an in-memory database, with
// Redis and the event publisher absent so their middleware and publishing
// degrade to no-ops.
func newTestAPI(t *testing.T, dbName string) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite("file:" + dbName + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db, "sqlite3"))

	cfg := config.Config{
		Port:         "3000",
		DBDriver:     "sqlite3",
		JWTSecret:    "test-secret",
		AccessTTLMin: 60,
		BcryptCost:   bcrypt.MinCost,
	}

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, repository.NewUserRepo(db)),
		Train:   handler.NewTrainHandler(repository.NewTrainRepo(db)),
		Booking: handler.NewBookingHandler(repository.NewBookingRepo(db), nil),
	}
	e := echo.New()
	router.RegisterRoutes(e, h, cfg, nil)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/login/",
		`{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		JWTToken string `json:"jwtToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.JWTToken)
	return resp.JWTToken
}

func TestRegisterValidation(t *testing.T) {
	e := newTestAPI(t, "api_register")

	rec := doJSON(e, http.MethodPost, "/register/",
		`{"username":"alice","password":"secret123","email":"alice@example.com"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User created successfully", rec.Body.String())

	// Registering the same username twice is rejected on the second attempt.
	rec = doJSON(e, http.MethodPost, "/register/",
		`{"username":"alice","password":"secret123","email":"alice@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", rec.Body.String())

	// Short passwords are always rejected.
	rec = doJSON(e, http.MethodPost, "/register/",
		`{"username":"bob","password":"short","email":"bob@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password is too short", rec.Body.String())
}

func TestLoginValidation(t *testing.T) {
	e := newTestAPI(t, "api_login")

	rec := doJSON(e, http.MethodPost, "/register/",
		`{"username":"alice","password":"secret123","email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/login/",
		`{"username":"nobody","password":"secret123"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user", rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/login/",
		`{"username":"alice","password":"wrongpass"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid password", rec.Body.String())

	login(t, e, "alice", "secret123")
}

func TestTrainCreateAndAvailabilityValidation(t *testing.T) {
	e := newTestAPI(t, "api_train")

	rec := doJSON(e, http.MethodPost, "/trains/create",
		`{"train_name":"Express1","source":"A"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/trains/availability?source=A", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Source and destination are required", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/trains/availability?source=A&destination=B", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestBookingAuthRequired(t *testing.T) {
	e := newTestAPI(t, "api_auth")

	rec := doJSON(e, http.MethodPost, "/trains/Express1/book",
		`{"id":1,"no_of_seats":1}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header missing or invalid", rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/trains/Express1/book",
		`{"id":1,"no_of_seats":1}`, "garbled")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid JWT Token", rec.Body.String())
}

// TestBookingScenario walks the end-to-end flow: create a train, check
// availability, book against it with a real token, and watch the advertised
// availability shrink.
func TestBookingScenario(t *testing.T) {
	e := newTestAPI(t, "api_scenario")

	rec := doJSON(e, http.MethodPost, "/register/",
		`{"username":"alice","password":"secret123","email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := login(t, e, "alice", "secret123")

	rec = doJSON(e, http.MethodPost, "/trains/create",
		`{"train_name":"Express1","source":"A","destination":"B","seat_capacity":10,
		  "arrival_time_at_source":"09:00","arrival_time_at_destination":"12:00"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Train added successfully", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/trains/availability?source=A&destination=B", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"train_name":"Express1","available_seats":10,"arrival_time":"09:00"}]`,
		rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/trains/Express1/book",
		`{"id":1,"no_of_seats":3}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var booked struct {
		Message     string `json:"message"`
		BookingID   uint64 `json:"booking_id"`
		SeatNumbers string `json:"seat_numbers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booked))
	assert.Equal(t, "Seat booked successfully", booked.Message)
	assert.EqualValues(t, 1, booked.BookingID)
	assert.Equal(t, "8, 9, 10", booked.SeatNumbers)

	rec = doJSON(e, http.MethodGet, "/trains/availability?source=A&destination=B", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"train_name":"Express1","available_seats":7,"arrival_time":"09:00"}]`,
		rec.Body.String())

	// More seats than remain on the train.
	rec = doJSON(e, http.MethodPost, "/trains/Express1/book",
		`{"id":1,"no_of_seats":8}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Not enough seats available", rec.Body.String())

	// Exactly the remaining capacity drives it to zero.
	rec = doJSON(e, http.MethodPost, "/trains/Express1/book",
		`{"id":1,"no_of_seats":7}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/trains/availability?source=A&destination=B", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"train_name":"Express1","available_seats":0,"arrival_time":"09:00"}]`,
		rec.Body.String())

	// Unknown trains are a 404 even with valid auth.
	rec = doJSON(e, http.MethodPost, "/trains/Ghost/book",
		`{"id":1,"no_of_seats":1}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Train not found", rec.Body.String())
}

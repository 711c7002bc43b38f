package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/routes"
	"hotel-booking-backend/services"
)

// newTestServer wires the full stack (sqlite, services, controllers,
// router) the same way main does, minus the listener.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "booking.db")
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))

	refGen := services.NewReferenceGenerator("GLA", 5)
	bookingSvc := services.NewBookingService(db, refGen, 30)
	hotelSvc := services.NewHotelService(db)
	adminSvc := services.NewAdminService(db, refGen)

	router := routes.SetupRouter(
		controllers.NewHotelController(hotelSvc, bookingSvc),
		controllers.NewBookingController(bookingSvc),
		controllers.NewAdminController(adminSvc),
	)
	return router, db
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func do(t *testing.T, router *gin.Engine, method, target string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSeedSearchBookLookupFlow(t *testing.T) {
	router, _ := newTestServer(t)

	// Seed the catalog.
	code, env := do(t, router, http.MethodPost, "/api/admin/seed", nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)

	var seed services.SeedResult
	require.NoError(t, json.Unmarshal(env.Data, &seed))
	require.True(t, seed.Seeded)
	require.Equal(t, 3, seed.HotelsCreated)

	// Find the hotel by partial name.
	code, env = do(t, router, http.MethodGet, "/api/hotels?name=dakota", nil)
	require.Equal(t, http.StatusOK, code)

	var hotels []services.HotelSummary
	require.NoError(t, json.Unmarshal(env.Data, &hotels))
	require.Len(t, hotels, 1)
	require.Equal(t, "Dakota Glasgow", hotels[0].Name)
	hotelID := hotels[0].ID

	// Check availability: all six rooms fit two guests except singles.
	code, env = do(t, router, http.MethodGet,
		fmt.Sprintf("/api/hotels/%d/availability?checkIn=2026-03-10&checkOut=2026-03-12&guests=2", hotelID), nil)
	require.Equal(t, http.StatusOK, code)

	var avail services.AvailabilityResult
	require.NoError(t, json.Unmarshal(env.Data, &avail))
	require.Len(t, avail.Rooms, 4)
	require.Equal(t, "DK201", avail.Rooms[0].RoomNumber)

	// Book a double.
	code, env = do(t, router, http.MethodPost, "/api/bookings", gin.H{
		"hotelId":  hotelID,
		"roomType": "double",
		"checkIn":  "2026-03-10",
		"checkOut": "2026-03-12",
		"guests":   2,
	})
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		Reference string `json:"reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Regexp(t, `^GLA-\d{8}-[A-Z0-9]{6}$`, created.Reference)

	// The booked room dropped out of availability.
	code, env = do(t, router, http.MethodGet,
		fmt.Sprintf("/api/hotels/%d/availability?checkIn=2026-03-10&checkOut=2026-03-12&guests=2", hotelID), nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &avail))
	require.Len(t, avail.Rooms, 3)
	require.Equal(t, "DK202", avail.Rooms[0].RoomNumber)

	// Look the booking up by reference.
	code, env = do(t, router, http.MethodGet, "/api/bookings/"+created.Reference, nil)
	require.Equal(t, http.StatusOK, code)

	var detail services.BookingDetails
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Equal(t, created.Reference, detail.Reference)
	require.Equal(t, "Dakota Glasgow", detail.HotelName)
	require.Equal(t, "DK201", detail.RoomNumber)
	require.Equal(t, "2026-03-10", detail.CheckIn)
	require.Equal(t, "2026-03-12", detail.CheckOut)
}

func TestBookingRequestValidationErrors(t *testing.T) {
	router, _ := newTestServer(t)
	_, _ = do(t, router, http.MethodPost, "/api/admin/seed", nil)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing fields", gin.H{"hotelId": 1}},
		{"bad date format", gin.H{"hotelId": 1, "roomType": "double", "checkIn": "10/03/2026", "checkOut": "2026-03-12", "guests": 2}},
		{"check-out before check-in", gin.H{"hotelId": 1, "roomType": "double", "checkIn": "2026-03-12", "checkOut": "2026-03-10", "guests": 2}},
		{"equal dates", gin.H{"hotelId": 1, "roomType": "double", "checkIn": "2026-03-10", "checkOut": "2026-03-10", "guests": 2}},
		{"unknown room type", gin.H{"hotelId": 1, "roomType": "penthouse", "checkIn": "2026-03-10", "checkOut": "2026-03-12", "guests": 2}},
		{"stay too long", gin.H{"hotelId": 1, "roomType": "double", "checkIn": "2026-03-01", "checkOut": "2026-05-01", "guests": 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := do(t, router, http.MethodPost, "/api/bookings", tc.body)
			require.Equal(t, http.StatusBadRequest, code)
			require.False(t, env.Success)
			require.NotEmpty(t, env.Error)
		})
	}
}

func TestBookingUnknownHotelReturns404(t *testing.T) {
	router, _ := newTestServer(t)

	code, env := do(t, router, http.MethodPost, "/api/bookings", gin.H{
		"hotelId":  999,
		"roomType": "double",
		"checkIn":  "2026-03-10",
		"checkOut": "2026-03-12",
		"guests":   2,
	})
	require.Equal(t, http.StatusNotFound, code)
	require.False(t, env.Success)
}

func TestBookingSoldOutReturns409(t *testing.T) {
	router, _ := newTestServer(t)
	_, _ = do(t, router, http.MethodPost, "/api/admin/seed", nil)

	body := gin.H{
		"hotelId":  1,
		"roomType": "deluxe",
		"checkIn":  "2026-04-01",
		"checkOut": "2026-04-03",
		"guests":   4,
	}

	for i := 0; i < 2; i++ {
		code, _ := do(t, router, http.MethodPost, "/api/bookings", body)
		require.Equal(t, http.StatusCreated, code)
	}

	code, env := do(t, router, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusConflict, code)
	require.False(t, env.Success)
}

func TestLookupUnknownReferenceReturns404(t *testing.T) {
	router, _ := newTestServer(t)

	code, env := do(t, router, http.MethodGet, "/api/bookings/GLA-20260101-ZZZZZZ", nil)
	require.Equal(t, http.StatusNotFound, code)
	require.False(t, env.Success)
}

func TestAvailabilityQueryValidation(t *testing.T) {
	router, _ := newTestServer(t)
	_, _ = do(t, router, http.MethodPost, "/api/admin/seed", nil)

	targets := []string{
		"/api/hotels/abc/availability?checkIn=2026-03-10&checkOut=2026-03-12&guests=2",
		"/api/hotels/1/availability?checkIn=bogus&checkOut=2026-03-12&guests=2",
		"/api/hotels/1/availability?checkIn=2026-03-10&checkOut=2026-03-12&guests=two",
		"/api/hotels/1/availability?checkIn=2026-03-12&checkOut=2026-03-10&guests=2",
		"/api/hotels/1/availability?checkIn=2026-03-10&checkOut=2026-03-12&guests=0",
	}
	for _, target := range targets {
		code, env := do(t, router, http.MethodGet, target, nil)
		require.Equal(t, http.StatusBadRequest, code, target)
		require.False(t, env.Success)
	}

	code, _ := do(t, router, http.MethodGet,
		"/api/hotels/999/availability?checkIn=2026-03-10&checkOut=2026-03-12&guests=2", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestResetEndpointWipesEverything(t *testing.T) {
	router, db := newTestServer(t)
	_, _ = do(t, router, http.MethodPost, "/api/admin/seed", nil)

	code, env := do(t, router, http.MethodPost, "/api/admin/reset", nil)
	require.Equal(t, http.StatusOK, code)

	var reset services.ResetResult
	require.NoError(t, json.Unmarshal(env.Data, &reset))
	require.EqualValues(t, 3, reset.HotelsDeleted)
	require.EqualValues(t, 18, reset.RoomsDeleted)

	var hotels int64
	require.NoError(t, db.Table("hotels").Count(&hotels).Error)
	require.Zero(t, hotels)
}

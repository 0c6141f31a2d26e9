package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nailstudio/internal/entities"
	"nailstudio/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailability struct {
	gotDate      string
	gotServiceID int
	resp         *entities.AvailabilityResponse
	err          error
}

func (s *stubAvailability) CheckAvailability(date string, serviceID int) (*entities.AvailabilityResponse, error) {
	s.gotDate = date
	s.gotServiceID = serviceID
	return s.resp, s.err
}

func availabilityRequest(t *testing.T, stub *stubAvailability, url string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/api/available-slots", NewAvailabilityHandler(stub).GetAvailableSlots).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestGetAvailableSlots_MissingDate(t *testing.T) {
	rec := availabilityRequest(t, &stubAvailability{}, "/api/available-slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableSlots_InvalidDate(t *testing.T) {
	rec := availabilityRequest(t, &stubAvailability{}, "/api/available-slots?date=10-06-2024")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableSlots_InvalidServiceID(t *testing.T) {
	rec := availabilityRequest(t, &stubAvailability{}, "/api/available-slots?date=2024-06-10&service_id=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableSlots_OK(t *testing.T) {
	stub := &stubAvailability{resp: &entities.AvailabilityResponse{
		Date:            "2024-06-10",
		ServiceDuration: 60,
		TimeSlots: []entities.TimeSlot{
			{Time: "10:00", Available: true},
			{Time: "10:30", Available: false},
		},
	}}

	rec := availabilityRequest(t, stub, "/api/available-slots?date=2024-06-10&service_id=7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06-10", stub.gotDate)
	assert.Equal(t, 7, stub.gotServiceID)

	var resp entities.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 60, resp.ServiceDuration)
	require.Len(t, resp.TimeSlots, 2)
	assert.True(t, resp.TimeSlots[0].Available)
	assert.False(t, resp.TimeSlots[1].Available)
}

func TestGetAvailableSlots_OptionalServiceID(t *testing.T) {
	stub := &stubAvailability{resp: &entities.AvailabilityResponse{Date: "2024-06-10", ServiceDuration: 30}}

	rec := availabilityRequest(t, stub, "/api/available-slots?date=2024-06-10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, stub.gotServiceID)
}

func TestGetAvailableSlots_DataUnavailable(t *testing.T) {
	stub := &stubAvailability{err: service.ErrDataUnavailable}

	rec := availabilityRequest(t, stub, "/api/available-slots?date=2024-06-10")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

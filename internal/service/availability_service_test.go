package service

import (
	"errors"
	"fmt"
	"testing"

	"nailstudio/internal/entities"
	"nailstudio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDurationStore struct {
	durations map[int]int
	err       error
}

func (s *stubDurationStore) GetServiceDuration(id int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	duration, ok := s.durations[id]
	if !ok {
		return 0, fmt.Errorf("service %d: %w", id, repository.ErrNotFound)
	}
	return duration, nil
}

type stubAppointmentReader struct {
	booked []entities.BookedAppointment
	err    error
}

func (s *stubAppointmentReader) ListActiveAppointments(date string) ([]entities.BookedAppointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booked, nil
}

func newTestAvailability(durations map[int]int, booked []entities.BookedAppointment) *AvailabilityService {
	return NewAvailabilityService(
		&stubDurationStore{durations: durations},
		&stubAppointmentReader{booked: booked},
	)
}

func slotByTime(t *testing.T, slots []entities.TimeSlot, clock string) entities.TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.Time == clock {
			return s
		}
	}
	t.Fatalf("no slot at %s", clock)
	return entities.TimeSlot{}
}

func TestBuildSlots_EmptyDayAllAvailable(t *testing.T) {
	slots := BuildSlots(DefaultBusinessHours, DefaultBusinessHours.SlotMinutes, nil)

	require.Len(t, slots, 20) // 10 hours at 30-minute cadence
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "19:30", slots[len(slots)-1].Time)
	for i, s := range slots {
		assert.True(t, s.Available, "slot %s should be available on an empty day", s.Time)
		if i > 0 {
			assert.Greater(t, s.Time, slots[i-1].Time, "slot times must be strictly increasing")
		}
	}
}

func TestBuildSlots_OverlapMarking(t *testing.T) {
	// One booking 14:00-15:30, candidate footprint 30 minutes.
	busy := []BusyInterval{{Start: 14 * 60, End: 14*60 + 90}}
	slots := BuildSlots(DefaultBusinessHours, 30, busy)

	wantUnavailable := map[string]bool{
		"14:00": true,
		"14:30": true,
		"15:00": true,
	}
	for _, s := range slots {
		assert.Equal(t, !wantUnavailable[s.Time], s.Available, "slot %s", s.Time)
	}

	// Boundary touches do not collide: a 30-minute slot ending exactly at
	// 14:00 and one starting exactly at 15:30 both stay bookable.
	assert.True(t, slotByTime(t, slots, "13:30").Available)
	assert.True(t, slotByTime(t, slots, "15:30").Available)
	assert.True(t, slotByTime(t, slots, "13:00").Available)
}

func TestBuildSlots_SlotContainsBooking(t *testing.T) {
	// A 15-minute booking inside a 90-minute candidate footprint.
	busy := []BusyInterval{{Start: 12 * 60, End: 12*60 + 15}}
	slots := BuildSlots(DefaultBusinessHours, 90, busy)

	assert.False(t, slotByTime(t, slots, "11:30").Available, "slot containing the booking must be blocked")
	assert.False(t, slotByTime(t, slots, "12:00").Available)
	assert.True(t, slotByTime(t, slots, "10:30").Available)
}

func TestBuildSlots_EndOfDayClipping(t *testing.T) {
	slots := BuildSlots(DefaultBusinessHours, 90, nil)

	// 19:00 + 90min would end at 20:30, past closing.
	assert.False(t, slotByTime(t, slots, "19:00").Available)
	assert.False(t, slotByTime(t, slots, "19:30").Available)
	assert.True(t, slotByTime(t, slots, "18:30").Available)
	assert.True(t, slotByTime(t, slots, "18:00").Available)
}

func TestCheckAvailability_ExampleDay(t *testing.T) {
	svc := newTestAvailability(nil, []entities.BookedAppointment{
		{Time: "11:00", DurationMinutes: 60},
	})

	resp, err := svc.CheckAvailability("2024-06-10", 0)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, 30, resp.ServiceDuration)
	assert.True(t, slotByTime(t, resp.TimeSlots, "10:00").Available)
	assert.True(t, slotByTime(t, resp.TimeSlots, "10:30").Available)
	assert.False(t, slotByTime(t, resp.TimeSlots, "11:00").Available)
	assert.False(t, slotByTime(t, resp.TimeSlots, "11:30").Available)
	assert.True(t, slotByTime(t, resp.TimeSlots, "12:00").Available)
}

func TestCheckAvailability_ServiceDurationUsed(t *testing.T) {
	svc := newTestAvailability(map[int]int{7: 90}, nil)

	resp, err := svc.CheckAvailability("2024-06-10", 7)
	require.NoError(t, err)

	assert.Equal(t, 90, resp.ServiceDuration)
	assert.False(t, slotByTime(t, resp.TimeSlots, "19:00").Available)
	assert.True(t, slotByTime(t, resp.TimeSlots, "18:00").Available)
}

func TestCheckAvailability_UnknownServiceFallsBack(t *testing.T) {
	svc := newTestAvailability(map[int]int{7: 90}, nil)

	withUnknown, err := svc.CheckAvailability("2024-06-10", 42)
	require.NoError(t, err)
	withoutService, err := svc.CheckAvailability("2024-06-10", 0)
	require.NoError(t, err)

	assert.Equal(t, 30, withUnknown.ServiceDuration)
	assert.Equal(t, withoutService.TimeSlots, withUnknown.TimeSlots)
}

func TestCheckAvailability_UnknownBookingDurationDefaultsToAnHour(t *testing.T) {
	// Appointment whose service row is gone reports duration 0.
	svc := newTestAvailability(nil, []entities.BookedAppointment{
		{Time: "11:00", DurationMinutes: 0},
	})

	resp, err := svc.CheckAvailability("2024-06-10", 0)
	require.NoError(t, err)

	assert.False(t, slotByTime(t, resp.TimeSlots, "11:30").Available)
	assert.True(t, slotByTime(t, resp.TimeSlots, "12:00").Available)
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	svc := newTestAvailability(map[int]int{7: 60}, []entities.BookedAppointment{
		{Time: "13:00", DurationMinutes: 45},
	})

	first, err := svc.CheckAvailability("2024-06-10", 7)
	require.NoError(t, err)
	second, err := svc.CheckAvailability("2024-06-10", 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCheckAvailability_BookingStoreFailure(t *testing.T) {
	svc := NewAvailabilityService(
		&stubDurationStore{},
		&stubAppointmentReader{err: errors.New("connection refused")},
	)

	_, err := svc.CheckAvailability("2024-06-10", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestCheckAvailability_ServiceCatalogFailure(t *testing.T) {
	svc := NewAvailabilityService(
		&stubDurationStore{err: errors.New("connection refused")},
		&stubAppointmentReader{},
	)

	_, err := svc.CheckAvailability("2024-06-10", 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestParseClock(t *testing.T) {
	minutes, err := parseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	_, err = parseClock("25:99")
	assert.Error(t, err)
}

package pricing

import (
	"testing"
	"time"

	"kivulounge/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testRate = RateCard{DailyRate: 50, HourlyRate: 10}

func TestTotal_MissingDatesReturnZero(t *testing.T) {
	checkIn := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, Total(time.Time{}, time.Time{}, domain.BookingDaily, testRate))
	assert.Equal(t, 0.0, Total(checkIn, time.Time{}, domain.BookingDaily, testRate))
	assert.Equal(t, 0.0, Total(time.Time{}, checkIn, domain.BookingHourly, testRate))
}

func TestTotal_DailyTwoNights(t *testing.T) {
	checkIn := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, 6, 3, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 100.0, Total(checkIn, checkOut, domain.BookingDaily, testRate))
}

func TestTotal_HourlyFortyEightHours(t *testing.T) {
	checkIn := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, 6, 3, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 480.0, Total(checkIn, checkOut, domain.BookingHourly, testRate))
}

func TestTotal_PartialUnitsRoundUp(t *testing.T) {
	checkIn := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)

	// 1h05m bills as 2 hours
	assert.Equal(t, 20.0, Total(checkIn, checkIn.Add(65*time.Minute), domain.BookingHourly, testRate))

	// 25h bills as 2 days
	assert.Equal(t, 100.0, Total(checkIn, checkIn.Add(25*time.Hour), domain.BookingDaily, testRate))

	// exactly 24h bills as 1 day
	assert.Equal(t, 50.0, Total(checkIn, checkIn.Add(24*time.Hour), domain.BookingDaily, testRate))
}

func TestTotal_ReversedIntervalUsesAbsoluteDuration(t *testing.T) {
	checkIn := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	assert.Equal(t, Total(checkIn, checkOut, domain.BookingDaily, testRate),
		Total(checkOut, checkIn, domain.BookingDaily, testRate))
}

func TestTotal_MonotonicInDuration(t *testing.T) {
	checkIn := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, bt := range []domain.BookingType{domain.BookingDaily, domain.BookingHourly} {
		prev := 0.0
		for m := 30; m <= 72*60; m += 30 {
			got := Total(checkIn, checkIn.Add(time.Duration(m)*time.Minute), bt, testRate)
			assert.GreaterOrEqual(t, got, prev, "total must not decrease with duration (%s, %dm)", bt, m)
			prev = got
		}
	}
}

package pricing

import (
	"time"

	"kivulounge/internal/domain"
)

// RateCard is the price pair attached to a bookable room.
type RateCard struct {
	DailyRate  float64
	HourlyRate float64
}

// Total computes the advisory cost of a stay. A zero check-in or check-out
// returns 0: the caller has not finished selecting dates yet, which is not
// an error. Any partial billing unit rounds up, so a stay of 1h01m bills as
// 2 hours and a stay of 25h bills as 2 days.
func Total(checkIn, checkOut time.Time, bookingType domain.BookingType, rate RateCard) float64 {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}

	if bookingType == domain.BookingHourly {
		return float64(ceilUnits(d, time.Hour)) * rate.HourlyRate
	}
	return float64(ceilUnits(d, 24*time.Hour)) * rate.DailyRate
}

func ceilUnits(d, unit time.Duration) int64 {
	n := int64(d / unit)
	if d%unit != 0 {
		n++
	}
	return n
}

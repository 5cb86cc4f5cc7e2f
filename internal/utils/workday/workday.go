// Package workday holds the pure time arithmetic of the shift domain: the
// mapping from wall-clock time to logical work dates, and the time windows
// in which turn and day closings are permitted. Everything here is a pure
// function of its inputs so that the rules are testable at any hour.
package workday

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultCutoverHour is the hour at which a new work day starts. Activity
	// before this hour belongs to the previous day's work date.
	DefaultCutoverHour = 5

	// firstTurnCloseHour is the earliest local hour at which the first turn
	// may be closed.
	firstTurnCloseHour = 17

	// secondTurnCloseUntilHour ends the post-midnight window in which the
	// second turn may be closed (00:00 up to, not including, this hour).
	secondTurnCloseUntilHour = 3

	// dayCloseStartHour and dayCloseEndHour bound the window in which a
	// day-level closing is permitted.
	dayCloseStartHour = 1
	dayCloseEndHour   = 4
)

const dateLayout = "2006-01-02"

// WorkDate maps a timestamp to its logical work-day date. A shift that runs
// past midnight still belongs to the date it started on, so timestamps
// before cutoverHour resolve to the previous calendar date.
func WorkDate(now time.Time, cutoverHour int) string {
	if now.Hour() < cutoverHour {
		return now.AddDate(0, 0, -1).Format(dateLayout)
	}
	return now.Format(dateLayout)
}

// Eligibility is the outcome of a closing-window check. When not allowed,
// Message carries a human-readable explanation with a remaining-time
// estimate.
type Eligibility struct {
	Allowed bool
	Message string
}

func decimalHour(now time.Time) float64 {
	return float64(now.Hour()) + float64(now.Minute())/60
}

// FirstTurnCloseEligibility reports whether the first turn may be closed at
// the given time. The first turn cannot be closed before 17:00 local time.
func FirstTurnCloseEligibility(now time.Time) Eligibility {
	h := decimalHour(now)
	if h < firstTurnCloseHour {
		hoursLeft := int(firstTurnCloseHour - h)
		minutesLeft := int(math.Round((firstTurnCloseHour - h - float64(hoursLeft)) * 60))
		return Eligibility{
			Message: fmt.Sprintf("El primer turno no puede cerrarse antes de las 17:00 hs. Faltan %dh %dm aproximadamente.", hoursLeft, minutesLeft),
		}
	}
	return Eligibility{Allowed: true}
}

// SecondTurnCloseEligibility reports whether the second turn may be closed.
// The second turn closes in the post-midnight window of the next calendar
// date, from 00:00 until 03:00.
func SecondTurnCloseEligibility(now time.Time) Eligibility {
	if now.Hour() < secondTurnCloseUntilHour {
		return Eligibility{Allowed: true}
	}
	hoursLeft := 24 - int(math.Ceil(decimalHour(now)))
	return Eligibility{
		Message: fmt.Sprintf("El segundo turno no puede cerrarse antes de las 00:00 hs. Faltan aproximadamente %d horas.", hoursLeft),
	}
}

// DayCloseEligibility reports whether a day-level closing may be performed.
// Day closings are permitted only between 01:00 and 04:00 local time.
func DayCloseEligibility(now time.Time) Eligibility {
	h := now.Hour()
	if h >= dayCloseStartHour && h < dayCloseEndHour {
		return Eligibility{Allowed: true}
	}
	if h < dayCloseStartHour {
		return Eligibility{
			Message: "El cierre del día solo puede realizarse desde la 01:00 AM hasta las 04:00 AM.",
		}
	}
	hoursLeft := 24 + dayCloseStartHour - int(math.Ceil(decimalHour(now)))
	return Eligibility{
		Message: fmt.Sprintf("El cierre del día solo puede realizarse desde la 01:00 AM hasta las 04:00 AM. Faltan aproximadamente %d horas.", hoursLeft),
	}
}

// InOpenWindow reports whether a record timestamp belongs to the currently
// open turn. With no prior closing the window starts at the work-day
// cutover, compared by time of day so that post-midnight records carried
// onto the previous work date are handled consistently. With a prior
// closing the comparison is a strict full-timestamp greater-than.
func InOpenWindow(ts time.Time, lastClosing *time.Time, cutoverHour int) bool {
	if lastClosing == nil {
		return ts.Hour() >= cutoverHour
	}
	return ts.After(*lastClosing)
}

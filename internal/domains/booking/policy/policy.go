// Package policy holds the pure allocation and pricing rules for bookings.
// Everything here is deterministic given its inputs so it can be exercised
// without a database or a clock.
package policy

import (
	"fmt"
	"math"
	"time"

	bookingModel "chukchukgo/internal/domains/booking/model"
	trainModel "chukchukgo/internal/domains/train/model"

	"chukchukgo/shared/failure"
)

var berthLabels = [3]string{"LB", "MB", "UB"}

// SelectClass finds the inventory row for the requested travel class.
func SelectClass(classes []trainModel.ClassInventory, travelClass string) (trainModel.ClassInventory, error) {
	for _, class := range classes {
		if class.TravelClass == travelClass {
			return class, nil
		}
	}

	return trainModel.ClassInventory{}, failure.Conflict(fmt.Sprintf("travel class %s is not available on this train", travelClass)) // nolint:wrapcheck
}

// ComputeFare prices a booking as fare per seat times passenger count,
// rounded to two decimals.
func ComputeFare(classes []trainModel.ClassInventory, travelClass string, passengerCount int) (float64, error) {
	class, err := SelectClass(classes, travelClass)
	if err != nil {
		return 0, err
	}

	return round2(class.FarePerSeat * float64(passengerCount)), nil
}

// Assign allocates berths to passengers in request order against the class
// inventory snapshot. Confirmed seats come first, then RAC slots, then an
// unbounded waitlist. It returns the passengers with their statuses filled
// in and the aggregate booking status, which is the worst individual one.
func Assign(passengers []bookingModel.Passenger, inv trainModel.ClassInventory) ([]bookingModel.Passenger, string) {
	assigned := make([]bookingModel.Passenger, len(passengers))
	copy(assigned, passengers)

	aggregate := bookingModel.StatusConfirmed

	for i := range assigned {
		var status string

		switch {
		case i < inv.ConfirmedSeats:
			berthNumber := inv.BerthBase + i
			status = fmt.Sprintf("CNF/%s/%d", inv.Coach, berthNumber)
			assigned[i].Coach = inv.Coach
			assigned[i].Berth = fmt.Sprintf("%d %s", berthNumber, berthLabels[(berthNumber-1)%3])
		case i < inv.ConfirmedSeats+inv.RACSeats:
			status = fmt.Sprintf("RAC %d", i-inv.ConfirmedSeats+1)
			aggregate = worse(aggregate, bookingModel.StatusRAC)
		default:
			status = fmt.Sprintf("WL %d", i-inv.ConfirmedSeats-inv.RACSeats+1)
			aggregate = worse(aggregate, bookingModel.StatusWaitlisted)
		}

		assigned[i].Index = i
		assigned[i].BookingStatus = status
		assigned[i].CurrentStatus = status
	}

	return assigned, aggregate
}

// ComputeRefund applies the time bracket and per passenger cancellation fee
// to a cancelled booking. The bracket is chosen by whole hours remaining
// until departure at the frozen evaluation instant.
func ComputeRefund(totalFare float64, travelClass string, passengerCount int, departure, now time.Time) float64 {
	hours := int(departure.Sub(now).Hours())

	var pct float64

	switch {
	case hours > 48:
		pct = 1.0
	case hours > 12:
		pct = 0.75
	case hours > 6:
		pct = 0.5
	default:
		return 0
	}

	fee := cancellationFee(travelClass) * float64(passengerCount)

	return round2(math.Max(0, totalFare*pct-fee))
}

func cancellationFee(travelClass string) float64 {
	switch travelClass {
	case "SL":
		return 120
	case "1A", "2A", "3A":
		return 240
	default:
		return 60
	}
}

func worse(current, candidate string) string {
	if rank(candidate) > rank(current) {
		return candidate
	}

	return current
}

func rank(status string) int {
	switch status {
	case bookingModel.StatusWaitlisted:
		return 2
	case bookingModel.StatusRAC:
		return 1
	default:
		return 0
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

package policy_test

import (
	"testing"
	"time"

	bookingModel "chukchukgo/internal/domains/booking/model"
	"chukchukgo/internal/domains/booking/policy"
	trainModel "chukchukgo/internal/domains/train/model"

	"github.com/stretchr/testify/assert"
)

func classTable() []trainModel.ClassInventory {
	return []trainModel.ClassInventory{
		{TrainNumber: "12301", TravelClass: "1A", FarePerSeat: 3120.0, Coach: "H1", BerthBase: 1, ConfirmedSeats: 5, RACSeats: 1},
		{TrainNumber: "12301", TravelClass: "2A", FarePerSeat: 1890.0, Coach: "A1", BerthBase: 1, ConfirmedSeats: 12, RACSeats: 2},
		{TrainNumber: "12301", TravelClass: "3A", FarePerSeat: 1245.0, Coach: "B4", BerthBase: 32, ConfirmedSeats: 24, RACSeats: 4},
	}
}

func TestComputeFare(t *testing.T) {
	tests := []struct {
		name        string
		travelClass string
		count       int
		want        float64
		wantErr     bool
	}{
		{
			name:        "three passengers in 3A",
			travelClass: "3A",
			count:       3,
			want:        3735.00,
		},
		{
			name:        "single passenger in 1A",
			travelClass: "1A",
			count:       1,
			want:        3120.00,
		},
		{
			name:        "class not offered on train",
			travelClass: "SL",
			count:       2,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.ComputeFare(classTable(), tt.travelClass, tt.count)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestComputeRefund(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		totalFare   float64
		travelClass string
		count       int
		departure   time.Time
		want        float64
	}{
		{
			name:        "more than 48 hours keeps full fare minus fee",
			totalFare:   3735.00,
			travelClass: "3A",
			count:       3,
			departure:   now.Add(50 * time.Hour),
			want:        3015.00,
		},
		{
			name:        "under six hours refunds nothing",
			totalFare:   3735.00,
			travelClass: "3A",
			count:       3,
			departure:   now.Add(5 * time.Hour),
			want:        0.00,
		},
		{
			name:        "exactly twelve hours lands in the fifty percent bracket",
			totalFare:   3735.00,
			travelClass: "3A",
			count:       3,
			departure:   now.Add(12 * time.Hour),
			want:        1147.50,
		},
		{
			name:        "sleeper fee is lower",
			totalFare:   1370.00,
			travelClass: "SL",
			count:       2,
			departure:   now.Add(72 * time.Hour),
			want:        1130.00,
		},
		{
			name:        "fee larger than refundable share floors at zero",
			totalFare:   100.00,
			travelClass: "2A",
			count:       4,
			departure:   now.Add(72 * time.Hour),
			want:        0.00,
		},
		{
			name:        "exactly 48 hours uses the seventy five percent bracket",
			totalFare:   1000.00,
			travelClass: "CC",
			count:       1,
			departure:   now.Add(48 * time.Hour),
			want:        690.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.ComputeRefund(tt.totalFare, tt.travelClass, tt.count, tt.departure, now)

			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestAssign(t *testing.T) {
	passengers := func(n int) []bookingModel.Passenger {
		out := make([]bookingModel.Passenger, n)
		for i := range out {
			out[i].Name = "Passenger"
			out[i].Age = 30
		}

		return out
	}

	t.Run("all confirmed while capacity lasts", func(t *testing.T) {
		inv := trainModel.ClassInventory{TravelClass: "3A", Coach: "B4", BerthBase: 32, ConfirmedSeats: 24, RACSeats: 4}

		assigned, aggregate := policy.Assign(passengers(2), inv)

		assert.Equal(t, bookingModel.StatusConfirmed, aggregate)
		assert.Equal(t, "CNF/B4/32", assigned[0].BookingStatus)
		assert.Equal(t, "CNF/B4/33", assigned[1].BookingStatus)
		assert.Equal(t, "B4", assigned[0].Coach)
		assert.Equal(t, "32 MB", assigned[0].Berth)
		assert.Equal(t, "33 UB", assigned[1].Berth)
	})

	t.Run("overflow spills into RAC", func(t *testing.T) {
		inv := trainModel.ClassInventory{TravelClass: "3A", Coach: "B4", BerthBase: 32, ConfirmedSeats: 2, RACSeats: 4}

		assigned, aggregate := policy.Assign(passengers(3), inv)

		assert.Equal(t, bookingModel.StatusRAC, aggregate)
		assert.Equal(t, "CNF/B4/32", assigned[0].BookingStatus)
		assert.Equal(t, "CNF/B4/33", assigned[1].BookingStatus)
		assert.Equal(t, "RAC 1", assigned[2].BookingStatus)
		assert.Empty(t, assigned[2].Coach)
	})

	t.Run("RAC exhausted spills into waitlist", func(t *testing.T) {
		inv := trainModel.ClassInventory{TravelClass: "SL", Coach: "S1", BerthBase: 1, ConfirmedSeats: 1, RACSeats: 1}

		assigned, aggregate := policy.Assign(passengers(4), inv)

		assert.Equal(t, bookingModel.StatusWaitlisted, aggregate)
		assert.Equal(t, "CNF/S1/1", assigned[0].BookingStatus)
		assert.Equal(t, "RAC 1", assigned[1].BookingStatus)
		assert.Equal(t, "WL 1", assigned[2].BookingStatus)
		assert.Equal(t, "WL 2", assigned[3].BookingStatus)
	})

	t.Run("no capacity at all waitlists everyone", func(t *testing.T) {
		inv := trainModel.ClassInventory{TravelClass: "2A", Coach: "A1", BerthBase: 1, ConfirmedSeats: 0, RACSeats: 0}

		assigned, aggregate := policy.Assign(passengers(2), inv)

		assert.Equal(t, bookingModel.StatusWaitlisted, aggregate)
		assert.Equal(t, "WL 1", assigned[0].BookingStatus)
		assert.Equal(t, "WL 2", assigned[1].BookingStatus)
	})

	t.Run("passenger index and current status are filled", func(t *testing.T) {
		inv := trainModel.ClassInventory{TravelClass: "3A", Coach: "B4", BerthBase: 32, ConfirmedSeats: 24, RACSeats: 4}

		assigned, _ := policy.Assign(passengers(3), inv)

		for i, p := range assigned {
			assert.Equal(t, i, p.Index)
			assert.Equal(t, p.BookingStatus, p.CurrentStatus)
		}
	})
}

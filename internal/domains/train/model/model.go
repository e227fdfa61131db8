package model

import "chukchukgo/shared/model"

const (
	TableName  = "trains"
	EntityName = "train"

	FieldNumber        = "train_number"
	FieldName          = "train_name"
	FieldFromStation   = "from_station"
	FieldToStation     = "to_station"
	FieldDepartureTime = "departure_time"
	FieldArrivalTime   = "arrival_time"
	FieldRunningDays   = "running_days"
	FieldActive        = "active"
)

const (
	ClassTableName  = "train_classes"
	ClassEntityName = "train_class"

	ClassFieldTrainNumber = "train_number"
	ClassFieldTravelClass = "travel_class"
)

// Train is a scheduled service between two stations. RunningDays holds the
// weekdays the train operates as digits 0-6 (Sunday=0), e.g. "0123456" for daily.
type Train struct {
	Number        string `db:"train_number"`
	Name          string `db:"train_name"`
	FromStation   string `db:"from_station"`
	ToStation     string `db:"to_station"`
	DepartureTime string `db:"departure_time"`
	ArrivalTime   string `db:"arrival_time"`
	Duration      string `db:"duration"`
	DistanceKM    int    `db:"distance_km"`
	RunningDays   string `db:"running_days"`
	Active        bool   `db:"active"`
	model.Metadata
}

// RunsOn reports whether the train operates on the given weekday (Sunday=0).
func (t *Train) RunsOn(weekday int) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}

	digit := byte('0' + weekday)
	for i := 0; i < len(t.RunningDays); i++ {
		if t.RunningDays[i] == digit {
			return true
		}
	}

	return false
}

// ClassInventory is the bookable accommodation of one travel class on a train.
// Coach and BerthBase seed berth numbering for confirmed allocations.
type ClassInventory struct {
	TrainNumber    string  `db:"train_number"`
	TravelClass    string  `db:"travel_class"`
	FarePerSeat    float64 `db:"fare_per_seat"`
	Coach          string  `db:"coach"`
	BerthBase      int     `db:"berth_base"`
	ConfirmedSeats int     `db:"confirmed_seats"`
	RACSeats       int     `db:"rac_seats"`
	model.Metadata
}

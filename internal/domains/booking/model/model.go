package model

import (
	"time"

	"chukchukgo/shared/constant"
	"chukchukgo/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldPNR           = "pnr_number"
	FieldTrainNumber   = "train_number"
	FieldJourneyDate   = "journey_date"
	FieldTravelClass   = "travel_class"
	FieldBookingStatus = "booking_status"
	FieldCanCancel     = "can_cancel"
	FieldContactEmail  = "contact_email"
)

const (
	PassengerTableName  = "passengers"
	PassengerEntityName = "passenger"

	PassengerFieldPNR   = "pnr_number"
	PassengerFieldIndex = "passenger_index"
)

// Booking statuses, ordered from best to worst outcome.
const (
	StatusConfirmed          = "Confirmed"
	StatusPartiallyConfirmed = "PartiallyConfirmed"
	StatusRAC                = "RAC"
	StatusWaitlisted         = "Waitlisted"
	StatusCancelled          = "Cancelled"
)

const (
	ChartNotPrepared = "Chart Not Prepared"
	ChartPrepared    = "Chart Prepared"
)

const ConcessionNone = "NONE"

type Booking struct {
	PNR           string    `db:"pnr_number"`
	TrainNumber   string    `db:"train_number"`
	TrainName     string    `db:"train_name"`
	FromStation   string    `db:"from_station"`
	ToStation     string    `db:"to_station"`
	JourneyDate   time.Time `db:"journey_date"`
	DepartureTime string    `db:"departure_time"`
	ArrivalTime   string    `db:"arrival_time"`
	TravelClass   string    `db:"travel_class"`
	Quota         string    `db:"quota"`
	BookingDate   time.Time `db:"booking_date"`
	TotalFare     float64   `db:"total_fare"`
	BookingStatus string    `db:"booking_status"`
	ChartStatus   string    `db:"chart_status"`
	CanCancel     bool      `db:"can_cancel"`
	ContactEmail  string    `db:"contact_email"`
	ContactPhone  string    `db:"contact_phone"`
	PaymentMethod string    `db:"payment_method"`
	PaymentID     string    `db:"payment_id"`
	TxnID         string    `db:"txn_id"`
	model.Metadata

	Passengers []Passenger `json:"passengers"`
}

// DepartureAt resolves the departure instant from the journey date and the
// HH:mm departure time, both interpreted in the given location.
func (b *Booking) DepartureAt(loc *time.Location) time.Time {
	hour, minute := 0, 0
	if t, err := time.Parse(constant.ClockFormat, b.DepartureTime); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}

	return time.Date(b.JourneyDate.Year(), b.JourneyDate.Month(), b.JourneyDate.Day(), hour, minute, 0, 0, loc)
}

type Passenger struct {
	PNR             string `db:"pnr_number"`
	Index           int    `db:"passenger_index"`
	Name            string `db:"name"`
	Age             int    `db:"age"`
	Gender          string `db:"gender"`
	BerthPreference string `db:"berth_preference"`
	Concession      string `db:"concession"`
	IDProofType     string `db:"id_proof_type"`
	IDProofNumber   string `db:"id_proof_number"`
	BookingStatus   string `db:"booking_status"`
	CurrentStatus   string `db:"current_status"`
	Coach           string `db:"coach"`
	Berth           string `db:"berth"`
	model.Metadata
}

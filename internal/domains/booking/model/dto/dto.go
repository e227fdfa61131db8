package dto

import (
	"time"

	"chukchukgo/internal/domains/booking/model"
	"chukchukgo/shared/constant"
	gModel "chukchukgo/shared/model"
	"chukchukgo/shared/timezone"
)

type PassengerRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Age             int    `json:"age"              validate:"required,gt=0,lte=120"`
	Gender          string `json:"gender"           validate:"required,oneof=M F O"`
	BerthPreference string `json:"berth_preference" validate:"omitempty,oneof=LB MB UB SL SU"`
	Concession      string `json:"concession"       validate:"omitempty,max=20"`
	IDProofType     string `json:"id_proof_type"    validate:"omitempty,max=30"`
	IDProofNumber   string `json:"id_proof_number"  validate:"omitempty,max=50"`
}

type ContactDetailsRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=8,max=15"`
}

type PaymentDetailsRequest struct {
	Method    string `json:"method"     validate:"required,oneof=card upi netbanking wallet"`
	PaymentID string `json:"payment_id" validate:"omitempty,max=40"`
	TxnID     string `json:"txn_id"     validate:"omitempty,max=40"`
}

type CreateBookingRequest struct {
	TrainNumber    string                `json:"train_number"    validate:"required,max=10"`
	JourneyDate    string                `json:"journey_date"    validate:"required,datetime=2006-01-02"`
	TravelClass    string                `json:"travel_class"    validate:"required,max=5"`
	Quota          string                `json:"quota"           validate:"omitempty,max=5"`
	Passengers     []PassengerRequest    `json:"passengers"      validate:"required,min=1,max=6,dive"`
	ContactDetails ContactDetailsRequest `json:"contact_details" validate:"required"`
	Payment        PaymentDetailsRequest `json:"payment"         validate:"required"`
}

// ToModel builds the persistable booking from the request and the train
// snapshot taken at booking time. The PNR is assigned later by the service.
func (c *CreateBookingRequest) ToModel(trainName, fromStation, toStation, departureTime, arrivalTime, quota string, totalFare float64, user string) model.Booking {
	journeyDate, _ := time.ParseInLocation(constant.JourneyDateFormat, c.JourneyDate, timezone.GetLocation())
	now := timezone.Now()

	if c.Quota != constant.Empty {
		quota = c.Quota
	}

	passengers := make([]model.Passenger, len(c.Passengers))
	for i, p := range c.Passengers {
		concession := p.Concession
		if concession == constant.Empty {
			concession = model.ConcessionNone
		}

		passengers[i] = model.Passenger{
			Index:           i,
			Name:            p.Name,
			Age:             p.Age,
			Gender:          p.Gender,
			BerthPreference: p.BerthPreference,
			Concession:      concession,
			IDProofType:     p.IDProofType,
			IDProofNumber:   p.IDProofNumber,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return model.Booking{
		TrainNumber:   c.TrainNumber,
		TrainName:     trainName,
		FromStation:   fromStation,
		ToStation:     toStation,
		JourneyDate:   journeyDate,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		TravelClass:   c.TravelClass,
		Quota:         quota,
		BookingDate:   now,
		TotalFare:     totalFare,
		ChartStatus:   model.ChartNotPrepared,
		CanCancel:     true,
		ContactEmail:  c.ContactDetails.Email,
		ContactPhone:  c.ContactDetails.Phone,
		PaymentMethod: c.Payment.Method,
		PaymentID:     c.Payment.PaymentID,
		TxnID:         c.Payment.TxnID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
		Passengers: passengers,
	}
}

type CreateBookingResponse struct {
	Success bool   `json:"success"`
	PNR     string `json:"pnr"`
	Status  string `json:"status"`
}

type CancelBookingRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CancelBookingResponse struct {
	Success      bool    `json:"success"`
	PNR          string  `json:"pnr"`
	RefundAmount float64 `json:"refund_amount"`
}

type PassengerResponse struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	BerthPreference string `json:"berth_preference"`
	Concession      string `json:"concession"`
	BookingStatus   string `json:"booking_status"`
	CurrentStatus   string `json:"current_status"`
	Coach           string `json:"coach"`
	Berth           string `json:"berth"`
}

func (p *PassengerResponse) FromModel(model model.Passenger) {
	p.Name = model.Name
	p.Age = model.Age
	p.Gender = model.Gender
	p.BerthPreference = model.BerthPreference
	p.Concession = model.Concession
	p.BookingStatus = model.BookingStatus
	p.CurrentStatus = model.CurrentStatus
	p.Coach = model.Coach
	p.Berth = model.Berth
}

type ContactDetailsResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PaymentDetailsResponse struct {
	Method    string `json:"method"`
	PaymentID string `json:"payment_id"`
	TxnID     string `json:"txn_id"`
}

type BookingResponse struct {
	PNR            string                  `json:"pnr"`
	TrainNumber    string                  `json:"train_number"`
	TrainName      string                  `json:"train_name"`
	FromStation    string                  `json:"from_station"`
	ToStation      string                  `json:"to_station"`
	JourneyDate    string                  `json:"journey_date"`
	DepartureTime  string                  `json:"departure_time"`
	ArrivalTime    string                  `json:"arrival_time"`
	TravelClass    string                  `json:"travel_class"`
	Quota          string                  `json:"quota"`
	BookingDate    time.Time               `json:"booking_date"`
	TotalFare      float64                 `json:"total_fare"`
	BookingStatus  string                  `json:"booking_status"`
	ChartStatus    string                  `json:"chart_status"`
	CanCancel      bool                    `json:"can_cancel"`
	ContactDetails ContactDetailsResponse  `json:"contact_details"`
	Payment        PaymentDetailsResponse  `json:"payment"`
	Passengers     []PassengerResponse     `json:"passengers"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.PNR = model.PNR
	b.TrainNumber = model.TrainNumber
	b.TrainName = model.TrainName
	b.FromStation = model.FromStation
	b.ToStation = model.ToStation
	b.JourneyDate = model.JourneyDate.Format(constant.JourneyDateFormat)
	b.DepartureTime = model.DepartureTime
	b.ArrivalTime = model.ArrivalTime
	b.TravelClass = model.TravelClass
	b.Quota = model.Quota
	b.BookingDate = model.BookingDate
	b.TotalFare = model.TotalFare
	b.BookingStatus = model.BookingStatus
	b.ChartStatus = model.ChartStatus
	b.CanCancel = model.CanCancel
	b.ContactDetails = ContactDetailsResponse{Email: model.ContactEmail, Phone: model.ContactPhone}
	b.Payment = PaymentDetailsResponse{Method: model.PaymentMethod, PaymentID: model.PaymentID, TxnID: model.TxnID}

	b.Passengers = make([]PassengerResponse, len(model.Passengers))
	for i, p := range model.Passengers {
		b.Passengers[i].FromModel(p)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData int) {
	g.TotalData = totalData

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is published after a booking commits.
type BookingCreatedEvent struct {
	PNR            string    `json:"pnr"`
	TrainNumber    string    `json:"train_number"`
	TravelClass    string    `json:"travel_class"`
	JourneyDate    string    `json:"journey_date"`
	TotalFare      float64   `json:"total_fare"`
	BookingStatus  string    `json:"booking_status"`
	PassengerCount int       `json:"passenger_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published after a cancellation commits.
type BookingCancelledEvent struct {
	PNR          string    `json:"pnr"`
	RefundAmount float64   `json:"refund_amount"`
	OccurredAt   time.Time `json:"occurred_at"`
}

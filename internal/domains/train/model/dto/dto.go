package dto

import (
	"chukchukgo/internal/domains/train/model"
	gDto "chukchukgo/shared/dto"
	gModel "chukchukgo/shared/model"
	"chukchukgo/shared/timezone"
)

type SearchTrainsRequest struct {
	FromStation string `json:"from_station" validate:"required,max=100"`
	ToStation   string `json:"to_station"   validate:"required,max=100"`
	JourneyDate string `json:"journey_date" validate:"required,datetime=2006-01-02"`
	TravelClass string `json:"travel_class" validate:"omitempty,max=5"`
}

type RegisterClassRequest struct {
	TravelClass    string  `json:"travel_class"    validate:"required,max=5"`
	FarePerSeat    float64 `json:"fare_per_seat"   validate:"required,gt=0"`
	Coach          string  `json:"coach"           validate:"required,max=5"`
	BerthBase      int     `json:"berth_base"      validate:"omitempty,gte=1"`
	ConfirmedSeats int     `json:"confirmed_seats" validate:"gte=0"`
	RACSeats       int     `json:"rac_seats"       validate:"gte=0"`
}

type RegisterTrainRequest struct {
	Number        string                 `json:"train_number"   validate:"required,numeric,len=5"`
	Name          string                 `json:"train_name"     validate:"required,max=100"`
	FromStation   string                 `json:"from_station"   validate:"required,max=10"`
	ToStation     string                 `json:"to_station"     validate:"required,max=10"`
	DepartureTime string                 `json:"departure_time" validate:"required,datetime=15:04"`
	ArrivalTime   string                 `json:"arrival_time"   validate:"required,datetime=15:04"`
	Duration      string                 `json:"duration"       validate:"required,max=20"`
	DistanceKM    int                    `json:"distance_km"    validate:"gte=0"`
	RunningDays   string                 `json:"running_days"   validate:"required,max=7"`
	Classes       []RegisterClassRequest `json:"classes"        validate:"required,min=1,dive"`
}

func (r *RegisterTrainRequest) ToModel(user string) (model.Train, []model.ClassInventory) {
	now := timezone.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	train := model.Train{
		Number:        r.Number,
		Name:          r.Name,
		FromStation:   r.FromStation,
		ToStation:     r.ToStation,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Duration:      r.Duration,
		DistanceKM:    r.DistanceKM,
		RunningDays:   r.RunningDays,
		Active:        true,
		Metadata:      meta,
	}

	classes := make([]model.ClassInventory, len(r.Classes))
	for i, class := range r.Classes {
		berthBase := class.BerthBase
		if berthBase < 1 {
			berthBase = 1
		}

		classes[i] = model.ClassInventory{
			TrainNumber:    r.Number,
			TravelClass:    class.TravelClass,
			FarePerSeat:    class.FarePerSeat,
			Coach:          class.Coach,
			BerthBase:      berthBase,
			ConfirmedSeats: class.ConfirmedSeats,
			RACSeats:       class.RACSeats,
			Metadata:       meta,
		}
	}

	return train, classes
}

type ClassAvailabilityResponse struct {
	TravelClass    string  `json:"travel_class"`
	FarePerSeat    float64 `json:"fare_per_seat"`
	ConfirmedSeats int     `json:"confirmed_seats"`
	RACSeats       int     `json:"rac_seats"`
}

func (c *ClassAvailabilityResponse) FromModel(model model.ClassInventory) {
	c.TravelClass = model.TravelClass
	c.FarePerSeat = model.FarePerSeat
	c.ConfirmedSeats = model.ConfirmedSeats
	c.RACSeats = model.RACSeats
}

type TrainResponse struct {
	Number        string                      `json:"train_number"`
	Name          string                      `json:"train_name"`
	FromStation   string                      `json:"from_station"`
	ToStation     string                      `json:"to_station"`
	DepartureTime string                      `json:"departure_time"`
	ArrivalTime   string                      `json:"arrival_time"`
	Duration      string                      `json:"duration"`
	DistanceKM    int                         `json:"distance_km"`
	RunningDays   string                      `json:"running_days"`
	Classes       []ClassAvailabilityResponse `json:"classes"`
	gDto.Metadata
}

func (t *TrainResponse) FromModel(model model.Train, classes []model.ClassInventory) {
	t.Number = model.Number
	t.Name = model.Name
	t.FromStation = model.FromStation
	t.ToStation = model.ToStation
	t.DepartureTime = model.DepartureTime
	t.ArrivalTime = model.ArrivalTime
	t.Duration = model.Duration
	t.DistanceKM = model.DistanceKM
	t.RunningDays = model.RunningDays
	t.Metadata.FromModel(model.Metadata)

	t.Classes = make([]ClassAvailabilityResponse, len(classes))
	for i, class := range classes {
		t.Classes[i].FromModel(class)
	}
}

type SearchTrainsResponse struct {
	Trains    []TrainResponse `json:"trains"`
	TotalData int             `json:"total_data"`
}

package eticket_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"chukchukgo/config"
	"chukchukgo/infras/otel/mocks"
	s3Mocks "chukchukgo/infras/s3/mocks"
	"chukchukgo/internal/domains/booking/eticket"
	"chukchukgo/internal/domains/booking/model"
	"chukchukgo/shared/constant"
)

func ticketBooking() model.Booking {
	return model.Booking{
		PNR:           "1234567890",
		TrainNumber:   "12301",
		TrainName:     "Rajdhani Express",
		FromStation:   "NDLS",
		ToStation:     "HWH",
		JourneyDate:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		DepartureTime: "16:55",
		ArrivalTime:   "09:55",
		TravelClass:   "3A",
		Quota:         "GN",
		TotalFare:     3735.00,
		BookingStatus: model.StatusConfirmed,
		Passengers: []model.Passenger{
			{Index: 0, Name: "Rahul Sharma", Age: 34, Gender: "M", CurrentStatus: "CNF/B4/32"},
			{Index: 1, Name: "Priya Sharma", Age: 31, Gender: "F", CurrentStatus: "CNF/B4/33"},
		},
	}
}

func TestRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := eticket.New(&config.Config{}, s3Mocks.NewMockS3(ctrl), mocks.NewOtel())

	data, err := svc.Render(ticketBooking())

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// A PDF always opens with this marker.
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "tickets"

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), "tickets", "etickets", "1234567890.pdf", constant.ContentTypePDF, gomock.Any()).
		Return("https://cdn.example.com/etickets/1234567890.pdf", nil)

	svc := eticket.New(cfg, mockS3, mocks.NewOtel())

	url, err := svc.Archive(context.Background(), ticketBooking())

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/etickets/1234567890.pdf", url)
}
